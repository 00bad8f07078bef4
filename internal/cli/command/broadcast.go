package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/sigmesh-go/internal/core/domain"
)

// BroadcastCommand returns the broadcast command.
func BroadcastCommand() *cli.Command {
	return &cli.Command{
		Name:   "broadcast",
		Usage:  "Broadcast a message to every connection on the hub",
		Action: broadcastAction,
	}
}

func broadcastAction(c *cli.Context) error {
	return runOperation(c, domain.Broadcast())
}
