package resolve

import (
	"errors"
	"fmt"

	"github.com/dahl-build/gsr/pkg/cli/cmd"
	"github.com/dahl-build/gsr/pkg/log"
	"github.com/dahl-build/gsr/pkg/resolver"
	"github.com/urfave/cli/v2"
)

const (
	lookupComponentName  = "descriptor lookup"
	installComponentName = "installation"
)

func Install(c *cli.Context) error {
	bundleID := cmd.CommonArgs.BundleID

	r, cmdErr := newResolver(c)
	if cmdErr != nil {
		cmd.LogError(cmdErr, checkLogMessage)
		return cmdErr
	}

	d, err := r.ResolveAndInstall(bundleID)
	if err != nil {
		if errors.Is(err, resolver.ErrInstallFailed) {
			log.AuditComponentSuccessful(lookupComponentName)
			log.AuditComponentFailed(installComponentName)
		} else {
			log.AuditComponentFailed(lookupComponentName)
			log.AuditComponentSkipped(installComponentName)
		}

		cmdErr = resolveError(bundleID, err)
		cmd.LogError(cmdErr, checkLogMessage)
		return cmdErr
	}

	log.AuditComponentSuccessful(lookupComponentName)
	log.AuditComponentSuccessful(installComponentName)
	log.AuditInfof("Installed '%s' for bundle identifier '%s' to '%s'.", d.Path, bundleID, r.Destination())

	return nil
}

func Resolve(c *cli.Context) error {
	bundleID := cmd.CommonArgs.BundleID

	r, cmdErr := newResolver(c)
	if cmdErr != nil {
		cmd.LogError(cmdErr, checkLogMessage)
		return cmdErr
	}

	d, err := r.Resolve(bundleID)
	if err != nil {
		cmdErr = resolveError(bundleID, err)
		cmd.LogError(cmdErr, checkLogMessage)
		return cmdErr
	}

	log.Auditf("Bundle identifier '%s' resolves to '%s'.", bundleID, d.Path)
	log.Auditf("It would be installed to '%s'.", r.Destination())

	return nil
}

func resolveError(bundleID string, err error) *cmd.Error {
	switch {
	case errors.Is(err, resolver.ErrNoMatchingDescriptor):
		return &cmd.Error{
			UserMessage: fmt.Sprintf("No GoogleService-Info descriptor matches bundle identifier '%s'.", bundleID),
		}
	case errors.Is(err, resolver.ErrInstallFailed):
		return &cmd.Error{
			UserMessage: fmt.Sprintf("The descriptor for bundle identifier '%s' could not be installed.", bundleID),
			LogMessage:  err.Error(),
		}
	default:
		return &cmd.Error{
			UserMessage: fmt.Sprintf("Looking up the descriptor for bundle identifier '%s' failed.", bundleID),
			LogMessage:  err.Error(),
		}
	}
}
