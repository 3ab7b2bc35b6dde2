package main

import (
	"errors"
	"os"

	"github.com/dahl-build/gsr/pkg/cli/cmd"
	"github.com/dahl-build/gsr/pkg/cli/resolve"
	"github.com/dahl-build/gsr/pkg/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newApp() *cli.App {
	app := cmd.NewApp()
	app.Commands = []*cli.Command{
		cmd.NewInstallCommand(resolve.Install),
		cmd.NewResolveCommand(resolve.Resolve),
		cmd.NewListCommand(resolve.List),
		cmd.NewValidateCommand(resolve.Validate),
		cmd.NewVersionCommand(resolve.Version),
	}

	return app
}

func main() {
	err := newApp().Run(os.Args)
	_ = zap.L().Sync()

	if err != nil {
		// Command failures have already been reported to the user.
		var cmdErr *cmd.Error
		if !errors.As(err, &cmdErr) {
			log.Audit(err.Error())
		}

		os.Exit(1)
	}
}
