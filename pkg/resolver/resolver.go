package resolver

import (
	"errors"
	"fmt"

	"github.com/dahl-build/gsr/pkg/descriptor"
	"github.com/dahl-build/gsr/pkg/fileio"
	"go.uber.org/zap"
)

var (
	ErrNoMatchingDescriptor = errors.New("no matching GoogleService-Info descriptor found")
	ErrInstallFailed        = errors.New("installing descriptor")
)

// Policy decides what happens to candidates that cannot be read or parsed, or that lack
// a usable bundle identifier.
type Policy string

const (
	// PolicyFail stops the scan at the first unusable candidate.
	PolicyFail Policy = "fail"
	// PolicySkip logs unusable candidates and moves on to the next one.
	PolicySkip Policy = "skip"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyFail, PolicySkip:
		return p, nil
	case "":
		return PolicyFail, nil
	default:
		return "", fmt.Errorf("unknown invalid descriptor policy '%s': must be either '%s' or '%s'", s, PolicyFail, PolicySkip)
	}
}

type Config struct {
	// CandidateDir is the directory searched for descriptors.
	CandidateDir string
	// Pattern selects descriptor files inside CandidateDir. Defaults to descriptor.DefaultPattern.
	Pattern string
	// Destination is overwritten with the matching descriptor.
	Destination   string
	InvalidPolicy Policy
}

type Resolver struct {
	candidateDir  string
	pattern       string
	destination   string
	invalidPolicy Policy
}

func New(cfg Config) (*Resolver, error) {
	if cfg.CandidateDir == "" {
		return nil, fmt.Errorf("candidate directory must be specified")
	}

	if cfg.Destination == "" {
		return nil, fmt.Errorf("destination must be specified")
	}

	pattern := cfg.Pattern
	if pattern == "" {
		pattern = descriptor.DefaultPattern
	}

	policy, err := ParsePolicy(string(cfg.InvalidPolicy))
	if err != nil {
		return nil, err
	}

	return &Resolver{
		candidateDir:  cfg.CandidateDir,
		pattern:       pattern,
		destination:   cfg.Destination,
		invalidPolicy: policy,
	}, nil
}

func (r *Resolver) Destination() string {
	return r.destination
}

// ResolveAndInstall finds the first candidate whose BUNDLE_ID equals bundleID and replaces
// the destination with its exact bytes. Candidates after the match are never read. The
// destination is left untouched when no candidate matches or any step fails.
func (r *Resolver) ResolveAndInstall(bundleID string) (*descriptor.Descriptor, error) {
	d, err := r.Resolve(bundleID)
	if err != nil {
		return nil, err
	}

	if err = fileio.WriteFile(r.destination, d.Contents); err != nil {
		return nil, fmt.Errorf("%w '%s' to '%s': %w", ErrInstallFailed, d.Path, r.destination, err)
	}

	zap.S().Infof("Installed descriptor '%s' for bundle identifier '%s' to '%s'", d.Path, bundleID, r.destination)

	return d, nil
}

// Resolve performs the same scan as ResolveAndInstall without writing the destination.
func (r *Resolver) Resolve(bundleID string) (*descriptor.Descriptor, error) {
	candidates, err := descriptor.Enumerate(r.candidateDir, r.pattern)
	if err != nil {
		return nil, fmt.Errorf("enumerating descriptors: %w", err)
	}

	for _, path := range candidates {
		d, err := descriptor.Load(path)
		if err != nil {
			if r.invalidPolicy == PolicySkip {
				zap.S().Warnf("Skipping unusable descriptor: %s", err)
				continue
			}

			return nil, err
		}

		zap.S().Debugf("Descriptor '%s' has bundle identifier '%s'", path, d.BundleID)

		if d.BundleID == bundleID {
			return d, nil
		}
	}

	return nil, fmt.Errorf("bundle identifier '%s' in '%s': %w", bundleID, r.candidateDir, ErrNoMatchingDescriptor)
}
