package mihomo

import (
	"fmt"
	"io"
	"net/http"
)

// ResolveConfig is the read-only snapshot of the configuration fields the
// resolver consumes. The resolver never writes back to it.
type ResolveConfig struct {
	// ExplicitBinaryURL, when non-empty, is returned verbatim and bypasses
	// all architecture and version logic.
	ExplicitBinaryURL string
	// Arch is an optional architecture token from the config file. Validated
	// before use.
	Arch string
	// Channel selects both the version endpoint and the download base path.
	Channel Channel
	// UserAgent identifies this tool on the version request.
	UserAgent string
}

// ResolveBinaryURL determines the mihomo binary download URL.
//
// Precedence: a configured explicit URL wins outright; otherwise the
// architecture token comes from archOverride (CLI) > cfg.Arch (config file) >
// auto-detection, and the latest version for cfg.Channel is fetched to build
// the URL. Any validation or fetch error aborts resolution and is returned
// unchanged. Progress lines are written to out (nil silences them).
func ResolveBinaryURL(client *http.Client, cfg ResolveConfig, archOverride string, out io.Writer) (string, error) {
	if out == nil {
		out = io.Discard
	}

	if cfg.ExplicitBinaryURL != "" {
		fmt.Fprintf(out, "Using configured binary URL: %s\n", cfg.ExplicitBinaryURL)
		return cfg.ExplicitBinaryURL, nil
	}

	var arch string
	var err error
	switch {
	case archOverride != "":
		arch, err = ValidateArch(archOverride)
	case cfg.Arch != "":
		arch, err = ValidateArch(cfg.Arch)
	default:
		arch, err = DetectArch()
	}
	if err != nil {
		return "", err
	}

	fmt.Fprintf(out, "Fetching latest mihomo %s release for linux-%s...\n", cfg.Channel, arch)

	version, err := FetchLatestVersion(client, cfg.Channel, cfg.UserAgent)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(out, "Found mihomo version: %s\n", version)

	return BuildDownloadURL(version, arch, cfg.Channel), nil
}
