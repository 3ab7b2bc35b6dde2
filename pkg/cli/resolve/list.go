package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/dahl-build/gsr/pkg/cli/cmd"
	"github.com/dahl-build/gsr/pkg/config"
	"github.com/dahl-build/gsr/pkg/descriptor"
	"github.com/dahl-build/gsr/pkg/log"
	"github.com/urfave/cli/v2"
)

func List(c *cli.Context) error {
	cfg, cmdErr := setup(c)
	if cmdErr != nil {
		cmd.LogError(cmdErr, checkLogMessage)
		return cmdErr
	}

	results, cmdErr := loadCandidates(cfg)
	if cmdErr != nil {
		cmd.LogError(cmdErr, checkLogMessage)
		return cmdErr
	}

	for _, r := range results {
		name := relativeName(cfg.CandidateDir, r.Path)
		if r.Err != nil {
			log.Auditf("%s\t(unusable: %s)", name, r.Err)
			continue
		}

		log.Auditf("%s\t%s", name, r.Descriptor.BundleID)
	}

	log.Auditf("Found %d candidate descriptor(s) in '%s'.", len(results), cfg.CandidateDir)

	return nil
}

func loadCandidates(cfg *config.Config) ([]descriptor.Result, *cmd.Error) {
	results, err := descriptor.LoadAll(cfg.CandidateDir, cfg.Pattern)
	if err != nil {
		return nil, &cmd.Error{
			UserMessage: fmt.Sprintf("The candidate descriptors in '%s' could not be listed.", cfg.CandidateDir),
			LogMessage:  err.Error(),
		}
	}

	return results, nil
}

func relativeName(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return rel
	}

	return path
}
