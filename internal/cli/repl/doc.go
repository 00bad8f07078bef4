// Package repl provides the interactive command loop for sigmesh-cli.
//
// One line of input is processed to completion, including waiting for
// the HTTP response, before the next line is read. The loop has two
// states, running and terminated; no command is fatal.
package repl
