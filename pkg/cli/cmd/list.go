package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func NewListCommand(action func(*cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List candidate descriptors and their bundle identifiers",
		UsageText: fmt.Sprintf("%s list [OPTIONS]", appName),
		Action:    action,
		Flags:     candidateFlags(),
	}
}
