package descriptor

import (
	"errors"
	"fmt"
	"os"

	"howett.net/plist"
)

// BundleIDKey is the top-level property list key holding the bundle identifier a
// descriptor belongs to.
const BundleIDKey = "BUNDLE_ID"

var (
	ErrMalformed       = errors.New("malformed property list")
	ErrMissingBundleID = fmt.Errorf("missing %s key", BundleIDKey)
	ErrInvalidBundleID = fmt.Errorf("%s is not a string", BundleIDKey)
)

// Descriptor is a GoogleService-Info property list found among the candidate files.
// Contents holds the raw bytes of the file as read from disk.
type Descriptor struct {
	Path     string
	BundleID string
	Contents []byte
}

// Load reads the descriptor at path and extracts its bundle identifier.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor '%s': %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes data as a property list in any of the XML, binary or OpenStep formats.
// Everything except the BUNDLE_ID value is treated as opaque payload.
func Parse(path string, data []byte) (*Descriptor, error) {
	var properties map[string]any
	if _, err := plist.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("parsing descriptor '%s': %w: %w", path, ErrMalformed, err)
	}

	value, ok := properties[BundleIDKey]
	if !ok {
		return nil, fmt.Errorf("parsing descriptor '%s': %w", path, ErrMissingBundleID)
	}

	bundleID, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("parsing descriptor '%s': %w (found %T)", path, ErrInvalidBundleID, value)
	}

	return &Descriptor{
		Path:     path,
		BundleID: bundleID,
		Contents: data,
	}, nil
}
