package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/sigmesh-go/internal/cli/repl"
)

// InteractiveCommand returns the interactive-mode command.
func InteractiveCommand() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"repl", "i"},
		Usage:   "Start the interactive command loop",
		Action:  interactiveAction,
	}
}

func interactiveAction(c *cli.Context) error {
	client, metrics, _, err := buildClient(c)
	if err != nil {
		return err
	}

	r := repl.New(client,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithMetrics(metrics),
	)
	return r.Run(c.Context)
}
