// Package platform holds the few OS-specific helpers mihoro needs when
// installing the mihomo binary.
package platform

import (
	"os"
	"runtime"
)

// BinaryPerm is the mode installed binaries are marked with.
const BinaryPerm os.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
