package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/sigmesh-go/internal/core/domain"
	"github.com/yndnr/sigmesh-go/internal/telemetry/metric"
)

// Dispatcher sends one resolved operation and reports its outcome.
type Dispatcher interface {
	Dispatch(ctx context.Context, op domain.Operation) domain.Outcome
}

// Exit keywords. "Q" and "Quite" are the literal keywords required for
// compatibility with existing tooling (not a typo); "exit" and "quit"
// are accepted alongside them.
var exitKeywords = map[string]bool{
	"Q":     true,
	"Quite": true,
	"exit":  true,
	"quit":  true,
}

const usage = `Commands:
  broadcast                 broadcast a message to the hub
  send user <userId>        send a message to a single user
  send group <groupName>    send a message to a group
  add <group> <user>        add a user to a group
  remove <group> <user>     remove a user from a group
  stats                     show local dispatch counters
  help                      show this help
  Q                         quit`

// REPL is the interactive command loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	client    Dispatcher
	metrics   *metric.Registry
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO injects the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithMetrics injects the registry backing the stats command.
func WithMetrics(m *metric.Registry) Option {
	return func(r *REPL) { r.metrics = m }
}

// New creates a REPL dispatching through the given client.
func New(client Dispatcher, opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		client:    client,
		completer: NewCompleter(),
		history:   NewHistory(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run reads commands until an exit keyword or end of input. Input-stream
// closure terminates the loop gracefully; it is not an error.
func (r *REPL) Run(ctx context.Context) error {
	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, "sigmesh> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		if r.eval(ctx, line) {
			return nil
		}
	}
}

// eval processes one line and reports whether the loop should terminate.
func (r *REPL) eval(ctx context.Context, line string) bool {
	tokens := strings.Fields(line)

	if len(tokens) == 1 && exitKeywords[tokens[0]] {
		return true
	}

	op, err := parseOperation(tokens)
	if err == nil {
		fmt.Fprintln(r.output, r.client.Dispatch(ctx, op).String())
		return false
	}

	switch tokens[0] {
	case "help":
		fmt.Fprintln(r.output, usage)
	case "stats":
		r.printStats()
	default:
		fmt.Fprintf(r.output, "%v\n", err)
	}
	return false
}

// parseOperation maps a tokenized line to an operation. Verbs taking a
// group and user are matched case-insensitively; the send target
// literal ("user"/"group") is exact.
func parseOperation(tokens []string) (domain.Operation, error) {
	switch {
	case len(tokens) == 1 && tokens[0] == "broadcast":
		return domain.Broadcast(), nil

	case len(tokens) == 3 && tokens[0] == "send":
		switch tokens[1] {
		case "user":
			return domain.SendToUser(tokens[2]), nil
		case "group":
			return domain.SendToGroup(tokens[2]), nil
		default:
			return domain.Operation{}, domain.ErrUnrecognizedSubcommand.WithDetails(
				fmt.Sprintf("send %q: expected 'user' or 'group'", tokens[1]))
		}

	case len(tokens) == 3 && strings.EqualFold(tokens[0], "add"):
		return domain.AddToGroup(tokens[1], tokens[2]), nil

	case len(tokens) == 3 && strings.EqualFold(tokens[0], "remove"):
		return domain.RemoveFromGroup(tokens[1], tokens[2]), nil
	}

	return domain.Operation{}, domain.ErrUnrecognizedCommand.WithDetails(strings.Join(tokens, " "))
}

func (r *REPL) printStats() {
	if r.metrics == nil {
		fmt.Fprintln(r.output, "stats not enabled")
		return
	}

	stats, err := r.metrics.Snapshot()
	if err != nil {
		fmt.Fprintf(r.output, "stats unavailable: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Fprintln(r.output, "no requests dispatched yet")
		return
	}
	for _, s := range stats {
		fmt.Fprintf(r.output, "%-20s %-10s %d\n", s.Operation, s.Outcome, int64(s.Count))
	}
}
