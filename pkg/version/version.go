package version

import (
	"runtime/debug"
)

// Set at build time through -ldflags "-X github.com/dahl-build/gsr/pkg/version.version=<version>".
var version string

const shortRevisionLength = 12

func GetVersion() string {
	if version != "" {
		return version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "Unknown"
	}

	return fromBuildSettings(info.Settings)
}

func fromBuildSettings(settings []debug.BuildSetting) string {
	var revision string
	var modified bool

	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "Unknown"
	}

	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}

	v := "git-" + revision
	if modified {
		v += "-dirty"
	}

	return v
}
