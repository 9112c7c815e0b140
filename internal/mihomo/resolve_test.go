package mihomo

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

// roundTripFunc lets tests serve canned responses for the fixed GitHub
// endpoints without touching the network.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func versionClient(version string) *http.Client {
	return &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(version)),
				Header:     make(http.Header),
			}, nil
		}),
	}
}

func TestResolveBinaryURLExplicitURLWins(t *testing.T) {
	// The explicit URL bypasses all architecture and version logic, so even
	// a nonsense arch override must not be validated or fetched.
	client := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			t.Errorf("unexpected network request to %s", r.URL)
			return nil, errors.New("no network expected")
		}),
	}

	cfg := ResolveConfig{
		ExplicitBinaryURL: "https://example.com/custom/mihomo.gz",
		Arch:              "not-a-real-arch",
		Channel:           ChannelStable,
		UserAgent:         "mihoro-test",
	}

	url, err := ResolveBinaryURL(client, cfg, "also-not-real", nil)
	if err != nil {
		t.Fatalf("ResolveBinaryURL failed: %v", err)
	}
	if url != cfg.ExplicitBinaryURL {
		t.Errorf("url = %q, want the configured URL unchanged", url)
	}
}

func TestResolveBinaryURLCLIOverrideBeatsConfig(t *testing.T) {
	cfg := ResolveConfig{
		Arch:      "amd64",
		Channel:   ChannelStable,
		UserAgent: "mihoro-test",
	}

	url, err := ResolveBinaryURL(versionClient("v1.19.0"), cfg, "arm64", nil)
	if err != nil {
		t.Fatalf("ResolveBinaryURL failed: %v", err)
	}
	if !strings.Contains(url, "mihomo-linux-arm64-v1.19.0.gz") {
		t.Errorf("url = %q, want the CLI arch override arm64", url)
	}
}

func TestResolveBinaryURLConfigArchBeatsDetection(t *testing.T) {
	cfg := ResolveConfig{
		Arch:      "riscv64",
		Channel:   ChannelStable,
		UserAgent: "mihoro-test",
	}

	url, err := ResolveBinaryURL(versionClient("v1.19.0"), cfg, "", nil)
	if err != nil {
		t.Fatalf("ResolveBinaryURL failed: %v", err)
	}
	if !strings.Contains(url, "mihomo-linux-riscv64-v1.19.0.gz") {
		t.Errorf("url = %q, want the config arch riscv64", url)
	}
}

func TestResolveBinaryURLAutoDetect(t *testing.T) {
	cfg := ResolveConfig{
		Channel:   ChannelStable,
		UserAgent: "mihoro-test",
	}

	url, err := ResolveBinaryURL(versionClient("v1.19.0"), cfg, "", nil)
	if err != nil {
		t.Fatalf("ResolveBinaryURL failed: %v", err)
	}
	detected, err := DetectArch()
	if err != nil {
		t.Fatalf("DetectArch failed: %v", err)
	}
	if !strings.Contains(url, "mihomo-linux-"+detected+"-v1.19.0.gz") {
		t.Errorf("url = %q, want detected arch %q", url, detected)
	}
}

func TestResolveBinaryURLInvalidOverrideAborts(t *testing.T) {
	cfg := ResolveConfig{
		Channel:   ChannelStable,
		UserAgent: "mihoro-test",
	}

	_, err := ResolveBinaryURL(versionClient("v1.19.0"), cfg, "x86_64", nil)
	if !errors.Is(err, ErrInvalidArch) {
		t.Fatalf("error = %v, want ErrInvalidArch", err)
	}
}

func TestResolveBinaryURLAlphaChannel(t *testing.T) {
	var requested string
	client := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			requested = r.URL.String()
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("alpha-abc123\n")),
				Header:     make(http.Header),
			}, nil
		}),
	}

	cfg := ResolveConfig{
		Arch:      "arm64",
		Channel:   ChannelAlpha,
		UserAgent: "mihoro-test",
	}

	url, err := ResolveBinaryURL(client, cfg, "", nil)
	if err != nil {
		t.Fatalf("ResolveBinaryURL failed: %v", err)
	}
	if requested != alphaVersionURL {
		t.Errorf("version fetched from %q, want the alpha endpoint", requested)
	}
	want := "https://github.com/MetaCubeX/mihomo/releases/download/Prerelease-Alpha/mihomo-linux-arm64-alpha-abc123.gz"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}

func TestResolveBinaryURLEmptyVersionAborts(t *testing.T) {
	cfg := ResolveConfig{
		Arch:      "amd64",
		Channel:   ChannelStable,
		UserAgent: "mihoro-test",
	}

	_, err := ResolveBinaryURL(versionClient("   \n"), cfg, "", nil)
	if !errors.Is(err, ErrEmptyVersion) {
		t.Fatalf("error = %v, want ErrEmptyVersion", err)
	}
}
