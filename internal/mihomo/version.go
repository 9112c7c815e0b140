package mihomo

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	stableVersionURL = "https://github.com/MetaCubeX/mihomo/releases/latest/download/version.txt"
	alphaVersionURL  = "https://github.com/MetaCubeX/mihomo/releases/download/Prerelease-Alpha/version.txt"
)

// versionURL returns the version.txt endpoint for a channel.
func versionURL(channel Channel) string {
	if channel == ChannelAlpha {
		return alphaVersionURL
	}
	return stableVersionURL
}

// FetchLatestVersion retrieves the latest published mihomo version for the
// given release channel. The version string is opaque: trimmed, required to
// be non-empty, and otherwise passed through untouched.
func FetchLatestVersion(client *http.Client, channel Channel, userAgent string) (string, error) {
	return fetchVersion(client, versionURL(channel), userAgent)
}

func fetchVersion(client *http.Client, url, userAgent string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating version request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching version from %s: %v", ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: version endpoint %s returned status %d", ErrNetwork, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading version response: %v", ErrNetwork, err)
	}

	version := strings.TrimSpace(string(body))
	if version == "" {
		return "", fmt.Errorf("%w: received empty version from %s", ErrEmptyVersion, url)
	}
	return version, nil
}
