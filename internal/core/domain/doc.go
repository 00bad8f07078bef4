// Package domain defines the core domain models for sigmesh-cli.
//
// The package is pure: hub endpoints, operations, payloads and outcomes
// are plain values, and every resource path is derived deterministically
// from a (HubEndpoint, Operation) pair. Nothing here touches the network.
package domain
