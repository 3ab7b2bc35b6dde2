package descriptor

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name             string
		filename         string
		expectedBundleID string
	}{
		{
			name:             "XML descriptor",
			filename:         "app.plist",
			expectedBundleID: "com.example.app",
		},
		{
			name:             "Second XML descriptor",
			filename:         "other.plist",
			expectedBundleID: "com.example.other",
		},
		{
			name:             "OpenStep descriptor",
			filename:         "openstep.plist",
			expectedBundleID: "com.example.openstep",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join("testdata", test.filename)

			d, err := Load(path)
			require.NoError(t, err)

			raw, err := os.ReadFile(path)
			require.NoError(t, err)

			assert.Equal(t, path, d.Path)
			assert.Equal(t, test.expectedBundleID, d.BundleID)
			assert.Equal(t, raw, d.Contents)
		})
	}
}

func TestLoadMissingBundleID(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "missing_bundle_id.plist"))

	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrMissingBundleID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.plist"))

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "reading descriptor")
}

func TestParseBinary(t *testing.T) {
	// Setup
	data, err := plist.Marshal(map[string]any{
		BundleIDKey:  "com.example.binary",
		"PROJECT_ID": "example-binary",
	}, plist.BinaryFormat)
	require.NoError(t, err)

	// Test
	d, err := Parse("binary.plist", data)

	// Verify
	require.NoError(t, err)
	assert.Equal(t, "com.example.binary", d.BundleID)
	assert.Equal(t, data, d.Contents)
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectedErr error
	}{
		{
			name:        "Truncated XML",
			data:        `<?xml version="1.0" encoding="UTF-8"?><plist version="1.0"><dict><key>BUNDLE_ID</key>`,
			expectedErr: ErrMalformed,
		},
		{
			name:        "Top level array",
			data:        `<?xml version="1.0" encoding="UTF-8"?><plist version="1.0"><array><string>com.example.app</string></array></plist>`,
			expectedErr: ErrMalformed,
		},
		{
			name:        "Missing bundle identifier",
			data:        `<?xml version="1.0" encoding="UTF-8"?><plist version="1.0"><dict><key>PROJECT_ID</key><string>x</string></dict></plist>`,
			expectedErr: ErrMissingBundleID,
		},
		{
			name:        "Bundle identifier is not a string",
			data:        `<?xml version="1.0" encoding="UTF-8"?><plist version="1.0"><dict><key>BUNDLE_ID</key><integer>42</integer></dict></plist>`,
			expectedErr: ErrInvalidBundleID,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := Parse("candidate.plist", []byte(test.data))

			require.Error(t, err)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, test.expectedErr)
			assert.ErrorContains(t, err, "candidate.plist")
		})
	}
}
