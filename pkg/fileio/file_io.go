package fileio

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

const (
	// NonExecutablePerms are Linux permissions (rw-r--r--) for non-executable files (descriptors, configs, etc.)
	NonExecutablePerms os.FileMode = 0o644
)

// WriteFile replaces dest with data. The contents are staged in a temporary file and
// renamed over dest, so dest is either fully replaced or left untouched. The parent
// directory of dest must already exist.
func WriteFile(dest string, data []byte) error {
	destFile, err := renameio.NewPendingFile(dest, renameio.WithPermissions(NonExecutablePerms))
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer func() {
		_ = destFile.Cleanup()
	}()

	if _, err = destFile.Write(data); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	if err = destFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing destination file: %w", err)
	}

	return nil
}
