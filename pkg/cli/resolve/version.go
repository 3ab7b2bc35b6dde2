package resolve

import (
	"github.com/dahl-build/gsr/pkg/log"
	"github.com/dahl-build/gsr/pkg/version"
	"github.com/urfave/cli/v2"
)

func Version(_ *cli.Context) error {
	log.Auditf("GoogleService-Info Resolver Version: %s", version.GetVersion())
	return nil
}
