package mihomo

import (
	"fmt"
	"strings"
)

// Channel is a mihomo release track.
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelAlpha  Channel = "alpha"
)

// ParseChannel converts a config value into a Channel. Matching is
// case-insensitive; an empty value defaults to the stable channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stable":
		return ChannelStable, nil
	case "alpha":
		return ChannelAlpha, nil
	default:
		return "", fmt.Errorf("unknown release channel %q (expected \"stable\" or \"alpha\")", s)
	}
}
