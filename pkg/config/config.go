package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dahl-build/gsr/pkg/descriptor"
	"github.com/dahl-build/gsr/pkg/resolver"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCandidateDir = "build-system/google-services-ios"
	DefaultDestination  = "Telegram/Telegram-iOS/GoogleService-Info.plist"
)

type Config struct {
	CandidateDir       string `yaml:"candidateDir"`
	Pattern            string `yaml:"pattern"`
	Destination        string `yaml:"destination"`
	InvalidDescriptors string `yaml:"invalidDescriptors"`
}

// Defaults returns the locations used by the project build when nothing is configured.
// Paths are relative to the project root.
func Defaults() *Config {
	return &Config{
		CandidateDir:       DefaultCandidateDir,
		Pattern:            descriptor.DefaultPattern,
		Destination:        DefaultDestination,
		InvalidDescriptors: string(resolver.PolicyFail),
	}
}

// Parse reads a YAML configuration. Keys missing from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse the resolver configuration: %w", err)
	}

	if _, err := resolver.ParsePolicy(cfg.InvalidDescriptors); err != nil {
		return nil, fmt.Errorf("could not parse the resolver configuration: %w", err)
	}

	return cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file '%s': %w", path, err)
	}

	return Parse(data)
}

// WithRoot returns a copy of the configuration with relative paths anchored at rootDir.
func (c *Config) WithRoot(rootDir string) *Config {
	resolved := *c
	resolved.CandidateDir = anchor(rootDir, c.CandidateDir)
	resolved.Destination = anchor(rootDir, c.Destination)

	return &resolved
}

func (c *Config) ResolverConfig() (resolver.Config, error) {
	policy, err := resolver.ParsePolicy(c.InvalidDescriptors)
	if err != nil {
		return resolver.Config{}, err
	}

	return resolver.Config{
		CandidateDir:  c.CandidateDir,
		Pattern:       c.Pattern,
		Destination:   c.Destination,
		InvalidPolicy: policy,
	}, nil
}

func anchor(rootDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(rootDir, path)
}
