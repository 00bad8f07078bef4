// Package token provides access-token generation for the hub service.
//
// The hub management API authorizes each request with a bearer token
// minted for exactly the resource URL it targets. Provider is the
// capability the request-building layer depends on; JWTProvider is the
// real implementation, signing HMAC-SHA256 JWTs with the service access
// key.
//
// Token claims:
//
//   - aud: the exact resource URL the token authorizes
//   - nameid: the sender identity
//   - iat/exp: issue time and a bounded lifetime
//
// Tokens are minted fresh per request and never cached; a token scoped
// to one path must not be reused for another.
package token
