// Package main provides the entry point for sigmesh-cli.
//
// sigmesh-cli is the command-line management client for a hosted
// messaging hub service:
//
//   - Broadcast messages to a hub
//   - Send to a single user or a group
//   - Add/remove users from groups
//
// Usage:
//
//	sigmesh-cli [command] [flags]
//	sigmesh-cli broadcast --hub chat
//	sigmesh-cli send user bob
//	sigmesh-cli interactive
//
// The CLI supports both single-command mode and interactive mode.
package main
