package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/sigmesh-go/internal/core/domain"
)

// GroupCommand returns the group-membership subcommand group.
func GroupCommand() *cli.Command {
	return &cli.Command{
		Name:  "group",
		Usage: "Manage group membership",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a user to a group",
				ArgsUsage: "GROUP_NAME USER_ID",
				Action:    groupAddAction,
			},
			{
				Name:      "rm",
				Aliases:   []string{"remove"},
				Usage:     "Remove a user from a group",
				ArgsUsage: "GROUP_NAME USER_ID",
				Action:    groupRemoveAction,
			},
		},
	}
}

func groupArgs(c *cli.Context) (group, userID string, err error) {
	group = c.Args().Get(0)
	userID = c.Args().Get(1)
	if group == "" || userID == "" {
		return "", "", fmt.Errorf("group name and user ID required")
	}
	return group, userID, nil
}

func groupAddAction(c *cli.Context) error {
	group, userID, err := groupArgs(c)
	if err != nil {
		return err
	}
	return runOperation(c, domain.AddToGroup(group, userID))
}

func groupRemoveAction(c *cli.Context) error {
	group, userID, err := groupArgs(c)
	if err != nil {
		return err
	}
	return runOperation(c, domain.RemoveFromGroup(group, userID))
}
