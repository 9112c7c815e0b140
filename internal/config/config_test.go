package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mihoro.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadMinimalConfig(t *testing.T) {
	path := writeConfig(t, `remote_config_url = "https://example.com/config.yaml"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.RemoteConfigURL != "https://example.com/config.yaml" {
		t.Errorf("RemoteConfigURL = %q", cfg.RemoteConfigURL)
	}
	if cfg.MihomoChannel != "stable" {
		t.Errorf("MihomoChannel default = %q, want stable", cfg.MihomoChannel)
	}
	if cfg.MihoroUserAgent != "mihoro" {
		t.Errorf("MihoroUserAgent default = %q, want mihoro", cfg.MihoroUserAgent)
	}
	if strings.HasPrefix(cfg.MihomoBinaryPath, "~") {
		t.Errorf("MihomoBinaryPath %q was not tilde-expanded", cfg.MihomoBinaryPath)
	}
	if strings.HasPrefix(cfg.MihomoConfigRoot, "~") {
		t.Errorf("MihomoConfigRoot %q was not tilde-expanded", cfg.MihomoConfigRoot)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
remote_config_url = "https://example.com/config.yaml"
remote_mihomo_binary_url = "https://example.com/mihomo.gz"
mihomo_arch = "arm64"
mihomo_channel = "alpha"
mihoro_user_agent = "custom-agent"

[mihomo_config]
port = 7890
socks_port = 7891
allow_lan = true
external_controller = "127.0.0.1:9090"
log_level = "info"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MihomoChannel != "alpha" {
		t.Errorf("MihomoChannel = %q, want alpha", cfg.MihomoChannel)
	}
	if cfg.RemoteMihomoBinaryURL != "https://example.com/mihomo.gz" {
		t.Errorf("RemoteMihomoBinaryURL = %q", cfg.RemoteMihomoBinaryURL)
	}
	if cfg.MihomoConfig.Port != 7890 {
		t.Errorf("MihomoConfig.Port = %d, want 7890", cfg.MihomoConfig.Port)
	}
	if cfg.MihomoConfig.AllowLan == nil || !*cfg.MihomoConfig.AllowLan {
		t.Error("MihomoConfig.AllowLan not parsed as true")
	}
	if cfg.MihomoConfig.ExternalController != "127.0.0.1:9090" {
		t.Errorf("MihomoConfig.ExternalController = %q", cfg.MihomoConfig.ExternalController)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not explain the file is missing", err)
	}
}

func TestLoadRejectsUnknownChannel(t *testing.T) {
	path := writeConfig(t, `
remote_config_url = "https://example.com/config.yaml"
mihomo_channel = "nightly"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown channel")
	}
	if !strings.Contains(err.Error(), "mihomo_channel") {
		t.Errorf("error %q does not point at mihomo_channel", err)
	}
}

func TestLoadRejectsMissingRemoteConfigURL(t *testing.T) {
	path := writeConfig(t, `mihomo_channel = "stable"`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error when remote_config_url is absent")
	}
}

func TestLoadRejectsOutOfRangePort(t *testing.T) {
	path := writeConfig(t, `
remote_config_url = "https://example.com/config.yaml"

[mihomo_config]
port = 99999
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandTilde("~/.config/mihoro.toml")
	if err != nil {
		t.Fatalf("ExpandTilde failed: %v", err)
	}
	want := filepath.Join(home, ".config/mihoro.toml")
	if got != want {
		t.Errorf("ExpandTilde = %q, want %q", got, want)
	}

	// Absolute paths pass through untouched.
	if got, _ := ExpandTilde("/etc/mihoro.toml"); got != "/etc/mihoro.toml" {
		t.Errorf("ExpandTilde(/etc/mihoro.toml) = %q", got)
	}
}

func TestMihomoConfigPath(t *testing.T) {
	cfg := &Config{MihomoConfigRoot: "/home/user/.config/mihomo"}
	if got := cfg.MihomoConfigPath(); got != "/home/user/.config/mihomo/config.yaml" {
		t.Errorf("MihomoConfigPath = %q", got)
	}
}
