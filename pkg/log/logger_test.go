package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigureGlobalLogger(t *testing.T) {
	// Setup
	original := zap.L()
	defer zap.ReplaceGlobals(original)

	logFilename := filepath.Join(t.TempDir(), "gsr.log")

	// Test
	require.NoError(t, ConfigureGlobalLogger(logFilename, false))
	zap.S().Debugf("looking up descriptor '%s'", "com.example.app")
	AuditInfo("Descriptor installed.")
	require.NoError(t, zap.L().Sync())

	// Verify
	contents, err := os.ReadFile(logFilename)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "DEBUG")
	assert.Contains(t, string(contents), "looking up descriptor 'com.example.app'")
	assert.Contains(t, string(contents), "INFO")
	assert.Contains(t, string(contents), "Descriptor installed.")
}

func TestNewLoggerStderrLevel(t *testing.T) {
	tests := []struct {
		name         string
		verbose      bool
		debugEnabled bool
	}{
		{
			name:         "Quiet by default",
			verbose:      false,
			debugEnabled: false,
		},
		{
			name:         "Verbose enables debug",
			verbose:      true,
			debugEnabled: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger, err := newLogger("", test.verbose)
			require.NoError(t, err)

			assert.Equal(t, test.debugEnabled, logger.Core().Enabled(zap.DebugLevel))
			assert.True(t, logger.Core().Enabled(zap.WarnLevel))
		})
	}
}

func TestNewLoggerInvalidPath(t *testing.T) {
	logFilename := filepath.Join(t.TempDir(), "missing", "gsr.log")

	_, err := newLogger(logFilename, false)
	require.Error(t, err)
}
