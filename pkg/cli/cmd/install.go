package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func NewInstallCommand(action func(*cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Copy the descriptor matching a bundle identifier into the project",
		UsageText: fmt.Sprintf("%s install --bundle-id <id> [OPTIONS]", appName),
		Action:    action,
		Flags:     resolveFlags(),
	}
}

func NewResolveCommand(action func(*cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Show which descriptor would be installed for a bundle identifier",
		UsageText: fmt.Sprintf("%s resolve --bundle-id <id> [OPTIONS]", appName),
		Action:    action,
		Flags:     resolveFlags(),
	}
}
