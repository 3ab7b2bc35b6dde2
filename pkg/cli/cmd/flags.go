package cmd

import "github.com/urfave/cli/v2"

const (
	FlagRoot         = "root"
	FlagConfigFile   = "config-file"
	FlagCandidateDir = "candidate-dir"
	FlagPattern      = "pattern"
	FlagDestination  = "destination"
	FlagSkipInvalid  = "skip-invalid"
	FlagBundleID     = "bundle-id"
	FlagLogFile      = "log-file"
	FlagVerbose      = "verbose"
)

type CommonFlags struct {
	RootDir      string
	ConfigFile   string
	CandidateDir string
	Pattern      string
	Destination  string
	SkipInvalid  bool
	BundleID     string
	LogFile      string
	Verbose      bool
}

var CommonArgs CommonFlags

var (
	RootDirFlag = &cli.StringFlag{
		Name:        FlagRoot,
		Usage:       "Path to the project root that relative locations are resolved against",
		Value:       ".",
		Destination: &CommonArgs.RootDir,
	}
	ConfigFileFlag = &cli.StringFlag{
		Name:        FlagConfigFile,
		Usage:       "Path to a YAML file overriding the default descriptor locations",
		Destination: &CommonArgs.ConfigFile,
	}
	CandidateDirFlag = &cli.StringFlag{
		Name:        FlagCandidateDir,
		Usage:       "Directory containing the candidate descriptors",
		Destination: &CommonArgs.CandidateDir,
	}
	PatternFlag = &cli.StringFlag{
		Name:        FlagPattern,
		Usage:       "Glob selecting descriptor files inside the candidate directory",
		Destination: &CommonArgs.Pattern,
	}
	DestinationFlag = &cli.StringFlag{
		Name:        FlagDestination,
		Usage:       "Path the matching descriptor is copied to",
		Destination: &CommonArgs.Destination,
	}
	SkipInvalidFlag = &cli.BoolFlag{
		Name:        FlagSkipInvalid,
		Usage:       "Skip descriptors that cannot be parsed instead of failing",
		Destination: &CommonArgs.SkipInvalid,
	}
	BundleIDFlag = &cli.StringFlag{
		Name:        FlagBundleID,
		Aliases:     []string{"b"},
		Usage:       "Bundle identifier of the application being built",
		Required:    true,
		Destination: &CommonArgs.BundleID,
	}
	LogFileFlag = &cli.StringFlag{
		Name:        FlagLogFile,
		Usage:       "Write diagnostic logs to this file instead of stderr",
		Destination: &CommonArgs.LogFile,
	}
	VerboseFlag = &cli.BoolFlag{
		Name:        FlagVerbose,
		Aliases:     []string{"v"},
		Usage:       "Enables extra logging information",
		Destination: &CommonArgs.Verbose,
	}
)

func candidateFlags() []cli.Flag {
	return []cli.Flag{
		RootDirFlag,
		ConfigFileFlag,
		CandidateDirFlag,
		PatternFlag,
		LogFileFlag,
		VerboseFlag,
	}
}

func resolveFlags() []cli.Flag {
	return append(candidateFlags(), DestinationFlag, SkipInvalidFlag, BundleIDFlag)
}
