package mihomo

import "fmt"

const (
	stableDownloadBase = "https://github.com/MetaCubeX/mihomo/releases/latest/download"
	alphaDownloadBase  = "https://github.com/MetaCubeX/mihomo/releases/download/Prerelease-Alpha"
)

// BuildDownloadURL constructs the download URL for a mihomo version and
// architecture token. Pure string assembly; inputs are assumed to be already
// validated by the caller.
func BuildDownloadURL(version, arch string, channel Channel) string {
	base := stableDownloadBase
	if channel == ChannelAlpha {
		base = alphaDownloadBase
	}
	return fmt.Sprintf("%s/mihomo-linux-%s-%s.gz", base, arch, version)
}
