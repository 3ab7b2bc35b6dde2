package resolve

import (
	"fmt"

	"github.com/dahl-build/gsr/pkg/cli/cmd"
	"github.com/dahl-build/gsr/pkg/config"
	"github.com/dahl-build/gsr/pkg/log"
	"github.com/dahl-build/gsr/pkg/resolver"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const checkLogMessage = "Re-run with --verbose or --log-file for more information."

// Configures logging and assembles the effective configuration: defaults, then the
// configuration file, then any explicitly set flags. Relative paths are anchored at the
// project root.
func setup(c *cli.Context) (*config.Config, *cmd.Error) {
	args := &cmd.CommonArgs

	// This needs to occur as early as possible so that the subsequent calls can use the log
	if err := log.ConfigureGlobalLogger(args.LogFile, args.Verbose); err != nil {
		return nil, &cmd.Error{
			UserMessage: fmt.Sprintf("The log file '%s' could not be set up.", args.LogFile),
			LogMessage:  err.Error(),
		}
	}

	cfg := config.Defaults()
	if args.ConfigFile != "" {
		loaded, err := config.Load(args.ConfigFile)
		if err != nil {
			return nil, &cmd.Error{
				UserMessage: fmt.Sprintf("The configuration file '%s' could not be loaded.", args.ConfigFile),
				LogMessage:  err.Error(),
			}
		}
		cfg = loaded
	}

	if c.IsSet(cmd.FlagCandidateDir) {
		cfg.CandidateDir = args.CandidateDir
	}
	if c.IsSet(cmd.FlagPattern) {
		cfg.Pattern = args.Pattern
	}
	if c.IsSet(cmd.FlagDestination) {
		cfg.Destination = args.Destination
	}
	if args.SkipInvalid {
		cfg.InvalidDescriptors = string(resolver.PolicySkip)
	}

	cfg = cfg.WithRoot(args.RootDir)

	zap.S().Debugf("Effective configuration: %+v", *cfg)

	return cfg, nil
}

func newResolver(c *cli.Context) (*resolver.Resolver, *cmd.Error) {
	cfg, cmdErr := setup(c)
	if cmdErr != nil {
		return nil, cmdErr
	}

	resolverConfig, err := cfg.ResolverConfig()
	if err != nil {
		return nil, &cmd.Error{
			UserMessage: "The resolver configuration is invalid.",
			LogMessage:  err.Error(),
		}
	}

	r, err := resolver.New(resolverConfig)
	if err != nil {
		return nil, &cmd.Error{
			UserMessage: "The resolver configuration is invalid.",
			LogMessage:  err.Error(),
		}
	}

	return r, nil
}
