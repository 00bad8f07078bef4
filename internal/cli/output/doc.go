// Package output provides output formatting for sigmesh-cli.
package output
