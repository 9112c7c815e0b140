package updater

import (
	"fmt"
	"runtime"
	"strings"
)

// PlatformString returns the "{os}_{arch}" component of mihoro's release
// asset names for the running platform.
func PlatformString() string {
	return fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
}

// ArchiveName returns the expected release archive filename. An empty target
// means the current platform; a non-empty target overrides the platform
// string (for installing onto a different machine).
func ArchiveName(target string) string {
	if target == "" {
		target = PlatformString()
	}
	return fmt.Sprintf("mihoro_%s.tar.gz", target)
}

// SelectAsset finds the release asset matching the target platform.
func SelectAsset(assets []Asset, target string) (*Asset, error) {
	expected := ArchiveName(target)
	for i := range assets {
		if assets[i].Name == expected {
			return &assets[i], nil
		}
	}

	// Flexible fallback: accept any archive carrying the platform string,
	// covering naming drift across release tooling versions.
	pattern := target
	if pattern == "" {
		pattern = PlatformString()
	}
	for i := range assets {
		if strings.Contains(assets[i].Name, pattern) && strings.HasSuffix(assets[i].Name, ".tar.gz") {
			return &assets[i], nil
		}
	}

	return nil, fmt.Errorf("no release asset found for %s (expected %s)", pattern, expected)
}
