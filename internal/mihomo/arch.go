package mihomo

import (
	"fmt"
	"runtime"
	"strings"
)

// supportedArchs lists every architecture token mihomo publishes Linux
// artifacts for. Detection and validation both draw from this set.
var supportedArchs = []string{
	"386",
	"386-go120",
	"386-go123",
	"386-softfloat",
	"amd64",
	"amd64-compatible",
	"amd64-v1",
	"amd64-v1-go120",
	"amd64-v1-go123",
	"amd64-v2",
	"amd64-v2-go120",
	"amd64-v2-go123",
	"amd64-v3",
	"amd64-v3-go120",
	"amd64-v3-go123",
	"arm64",
	"armv5",
	"armv6",
	"armv7",
	"loong64-abi1",
	"loong64-abi2",
	"mips-hardfloat",
	"mips-softfloat",
	"mips64",
	"mips64le",
	"mipsle-hardfloat",
	"mipsle-softfloat",
	"ppc64le",
	"riscv64",
	"s390x",
}

// archDefaults maps the Go architecture identifier of the running process to
// the default mihomo token for that family. Where mihomo publishes several
// sub-variants, the default favors runtime compatibility over peak ISA level
// (amd64-compatible rather than amd64-v3, armv7 rather than armv5).
var archDefaults = map[string]string{
	"amd64":    "amd64-compatible",
	"arm64":    "arm64",
	"arm":      "armv7",
	"386":      "386",
	"mips64":   "mips64",
	"mips64le": "mips64le",
	"mips":     "mips-softfloat",
	"mipsle":   "mipsle-softfloat",
	"ppc64le":  "ppc64le",
	"riscv64":  "riscv64",
	"s390x":    "s390x",
	"loong64":  "loong64-abi2",
}

// SupportedArchs returns the full set of valid architecture tokens.
func SupportedArchs() []string {
	out := make([]string, len(supportedArchs))
	copy(out, supportedArchs)
	return out
}

// DetectArch maps the current system architecture to mihomo's default asset
// token for that family. For more specific variants (amd64-v3, armv5, ...)
// callers pass an explicit token through ValidateArch instead.
func DetectArch() (string, error) {
	return detectArch(runtime.GOARCH)
}

func detectArch(goarch string) (string, error) {
	if token, ok := archDefaults[goarch]; ok {
		return token, nil
	}
	return "", fmt.Errorf("%w: %s (use --arch to specify manually)", ErrUnsupportedArch, goarch)
}

// ValidateArch checks that arch is one of the tokens mihomo publishes
// artifacts for. On failure the error suggests tokens sharing the input's
// prefix, or lists the full set when nothing is close.
func ValidateArch(arch string) (string, error) {
	for _, a := range supportedArchs {
		if a == arch {
			return arch, nil
		}
	}

	prefix := arch[:min(3, len(arch))]
	var suggestions []string
	for _, a := range supportedArchs {
		if strings.HasPrefix(a, prefix) {
			suggestions = append(suggestions, a)
		}
	}

	if len(suggestions) == 0 {
		return "", fmt.Errorf("%w: %q\nSupported: %s", ErrInvalidArch, arch, strings.Join(supportedArchs, ", "))
	}
	return "", fmt.Errorf("%w: %q\nDid you mean: %s", ErrInvalidArch, arch, strings.Join(suggestions, ", "))
}
