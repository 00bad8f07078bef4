// Package connection builds and dispatches authenticated requests to
// the hub service management API.
//
// The Client owns one long-lived *http.Client, reused across sequential
// requests (the CLI never issues two concurrently). Each request carries
// a bearer token minted for exactly its resource URL; tokens are never
// cached or reused across paths.
package connection
