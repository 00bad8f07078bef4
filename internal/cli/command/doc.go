// Package command provides CLI command definitions for sigmesh-cli.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive mode.
package command
