package resolve

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dahl-build/gsr/pkg/cli/cmd"
	"github.com/dahl-build/gsr/pkg/log"
	"github.com/dahl-build/gsr/pkg/validation"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func Validate(c *cli.Context) error {
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

	failures := validation.ValidateCandidates(results)
	if len(failures) == 0 {
		log.AuditInfof("All %d candidate descriptor(s) in '%s' are valid.", len(results), cfg.CandidateDir)
		return nil
	}

	log.Audit("Descriptor validation found the following errors:")

	failuresByPath := map[string][]validation.FailedValidation{}
	for _, f := range failures {
		failuresByPath[f.Path] = append(failuresByPath[f.Path], f)
	}

	orderedPaths := make([]string, 0, len(failuresByPath))
	for p := range failuresByPath {
		orderedPaths = append(orderedPaths, p)
	}
	slices.Sort(orderedPaths)

	logMessageBuilder := strings.Builder{}

	for _, path := range orderedPaths {
		log.Audit(fmt.Sprintf("  %s", relativeName(cfg.CandidateDir, path)))
		for _, f := range failuresByPath[path] {
			log.Audit(fmt.Sprintf("    %s", f.UserMessage))
			logMessageBuilder.WriteString(path + ": " + f.UserMessage + "\n")
			if f.Error != nil {
				logMessageBuilder.WriteString("\t" + f.Error.Error() + "\n")
			}
		}
	}

	zap.S().Errorf("Descriptor validation failures:\n%s", logMessageBuilder.String())

	cmdErr = &cmd.Error{
		UserMessage: fmt.Sprintf("%d descriptor validation failure(s) found.", len(failures)),
	}
	cmd.LogError(cmdErr, checkLogMessage)

	return cmdErr
}
