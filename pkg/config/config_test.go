package config

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/dahl-build/gsr/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Setup
	filename := "./testdata/valid_example.yaml"

	// Test
	cfg, err := Load(filename)
	require.NoError(t, err)

	// Verify
	assert.Equal(t, "build-system/google-services-ios/beta", cfg.CandidateDir)
	assert.Equal(t, "**/*.plist", cfg.Pattern)
	assert.Equal(t, "Telegram/Telegram-iOS/GoogleService-Info.plist", cfg.Destination)
	assert.Equal(t, "skip", cfg.InvalidDescriptors)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	// Test
	cfg, err := Load("./testdata/partial_example.yaml")
	require.NoError(t, err)

	// Verify
	assert.Equal(t, "/opt/descriptors", cfg.CandidateDir)
	assert.Equal(t, "*.plist", cfg.Pattern)
	assert.Equal(t, DefaultDestination, cfg.Destination)
	assert.Equal(t, "fail", cfg.InvalidDescriptors)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("./testdata/missing.yaml")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseBadConfig(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectedErr string
	}{
		{
			name:        "Not YAML",
			data:        "Not actually YAML",
			expectedErr: "could not parse the resolver configuration",
		},
		{
			name:        "Unknown policy",
			data:        "invalidDescriptors: ignore",
			expectedErr: "unknown invalid descriptor policy 'ignore'",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data))

			require.Error(t, err)
			assert.ErrorContains(t, err, test.expectedErr)
		})
	}
}

func TestWithRoot(t *testing.T) {
	// Setup
	cfg := &Config{
		CandidateDir: "build-system/google-services-ios",
		Destination:  "/abs/GoogleService-Info.plist",
	}

	// Test
	resolved := cfg.WithRoot("/src/app")

	// Verify
	assert.Equal(t, filepath.Join("/src/app", "build-system/google-services-ios"), resolved.CandidateDir)
	assert.Equal(t, "/abs/GoogleService-Info.plist", resolved.Destination)
	assert.Equal(t, "build-system/google-services-ios", cfg.CandidateDir, "original must not change")
}

func TestResolverConfig(t *testing.T) {
	// Setup
	cfg := Defaults().WithRoot("/src/app")
	cfg.InvalidDescriptors = "skip"

	// Test
	rc, err := cfg.ResolverConfig()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, resolver.Config{
		CandidateDir:  filepath.Join("/src/app", DefaultCandidateDir),
		Pattern:       "*.plist",
		Destination:   filepath.Join("/src/app", DefaultDestination),
		InvalidPolicy: resolver.PolicySkip,
	}, rc)
}
