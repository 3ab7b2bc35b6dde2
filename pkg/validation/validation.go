package validation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dahl-build/gsr/pkg/descriptor"
)

type FailedValidation struct {
	Path        string
	UserMessage string
	Error       error
}

// ValidateCandidates reports every problem found in a loaded candidate set. An empty
// result means each candidate parsed, carries a non-empty bundle identifier and no
// identifier is claimed by more than one file.
func ValidateCandidates(results []descriptor.Result) []FailedValidation {
	var failures []FailedValidation

	pathsByBundleID := map[string][]string{}
	var bundleIDs []string

	for _, r := range results {
		if r.Err != nil {
			failures = append(failures, FailedValidation{
				Path:        r.Path,
				UserMessage: loadFailureMessage(r.Err),
				Error:       r.Err,
			})
			continue
		}

		if r.Descriptor.BundleID == "" {
			failures = append(failures, FailedValidation{
				Path:        r.Path,
				UserMessage: fmt.Sprintf("The '%s' value must not be empty.", descriptor.BundleIDKey),
			})
			continue
		}

		bundleIDs = append(bundleIDs, r.Descriptor.BundleID)
		pathsByBundleID[r.Descriptor.BundleID] = append(pathsByBundleID[r.Descriptor.BundleID], r.Path)
	}

	duplicates := findDuplicates(bundleIDs)
	slices.Sort(duplicates)
	for _, bundleID := range slices.Compact(duplicates) {
		paths := pathsByBundleID[bundleID]
		for _, path := range paths {
			failures = append(failures, FailedValidation{
				Path: path,
				UserMessage: fmt.Sprintf("Bundle identifier '%s' is declared by %d descriptors; only one of them will be installed.",
					bundleID, len(paths)),
			})
		}
	}

	return failures
}

func loadFailureMessage(err error) string {
	switch {
	case errors.Is(err, descriptor.ErrMissingBundleID):
		return fmt.Sprintf("The '%s' key is missing.", descriptor.BundleIDKey)
	case errors.Is(err, descriptor.ErrInvalidBundleID):
		return fmt.Sprintf("The '%s' value must be a string.", descriptor.BundleIDKey)
	case errors.Is(err, descriptor.ErrMalformed):
		return "The file is not a valid property list."
	default:
		return "The file could not be read."
	}
}

func findDuplicates(items []string) []string {
	var duplicates []string

	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item] {
			duplicates = append(duplicates, item)
		}
		seen[item] = true
	}

	return duplicates
}
