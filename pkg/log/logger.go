package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const stderrPath = "stderr"

// ConfigureGlobalLogger replaces the global zap logger, accessed through zap.L() and zap.S(),
// with one writing console-encoded entries to the given file. An empty filename sends the
// output to stderr, where only warnings and above are recorded unless verbose is set.
func ConfigureGlobalLogger(logFilename string, verbose bool) error {
	logger, err := newLogger(logFilename, verbose)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}

func newLogger(logFilename string, verbose bool) (*zap.Logger, error) {
	level := zap.DebugLevel
	outputPath := logFilename

	if outputPath == "" {
		outputPath = stderrPath
		if !verbose {
			level = zap.WarnLevel
		}
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(level)
	logConfig.Encoding = "console"
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConfig.OutputPaths = []string{outputPath}
	logConfig.ErrorOutputPaths = []string{stderrPath}

	return logConfig.Build()
}

func logger() *zap.SugaredLogger {
	return zap.S()
}
