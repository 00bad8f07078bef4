package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/sigmesh-go/internal/core/domain"
)

// SendCommand returns the send subcommand group.
func SendCommand() *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "Send a message to a user or group",
		Subcommands: []*cli.Command{
			{
				Name:      "user",
				Usage:     "Send a message to a single user",
				ArgsUsage: "USER_ID",
				Action:    sendUserAction,
			},
			{
				Name:      "group",
				Usage:     "Send a message to a group",
				ArgsUsage: "GROUP_NAME",
				Action:    sendGroupAction,
			},
		},
	}
}

func sendUserAction(c *cli.Context) error {
	userID := c.Args().First()
	if userID == "" {
		return fmt.Errorf("user ID required")
	}
	return runOperation(c, domain.SendToUser(userID))
}

func sendGroupAction(c *cli.Context) error {
	group := c.Args().First()
	if group == "" {
		return fmt.Errorf("group name required")
	}
	return runOperation(c, domain.SendToGroup(group))
}
