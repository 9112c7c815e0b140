package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPath is where mihoro looks for its config file unless the
// --mihoro-config flag says otherwise.
const DefaultPath = "~/.config/mihoro.toml"

const envPrefix = "MIHORO"

// MihomoOverrides are the fields mihoro merges into the downloaded mihomo
// config file. Zero values (nil pointers, 0 ports, empty strings) are left
// untouched in the remote config.
type MihomoOverrides struct {
	Port               int    `mapstructure:"port" yaml:"port,omitempty"`
	SocksPort          int    `mapstructure:"socks_port" yaml:"socks-port,omitempty"`
	MixedPort          int    `mapstructure:"mixed_port" yaml:"mixed-port,omitempty"`
	AllowLan           *bool  `mapstructure:"allow_lan" yaml:"allow-lan,omitempty"`
	BindAddress        string `mapstructure:"bind_address" yaml:"bind-address,omitempty"`
	ExternalController string `mapstructure:"external_controller" yaml:"external-controller,omitempty"`
	ExternalUI         string `mapstructure:"external_ui" yaml:"external-ui,omitempty"`
	Secret             string `mapstructure:"secret" yaml:"secret,omitempty"`
	LogLevel           string `mapstructure:"log_level" yaml:"log-level,omitempty"`
}

// Config is the parsed mihoro.toml. Paths are tilde-expanded during Load.
type Config struct {
	RemoteConfigURL       string `mapstructure:"remote_config_url"`
	RemoteMihomoBinaryURL string `mapstructure:"remote_mihomo_binary_url"`
	MihomoArch            string `mapstructure:"mihomo_arch"`
	MihomoChannel         string `mapstructure:"mihomo_channel"`
	MihoroUserAgent       string `mapstructure:"mihoro_user_agent"`
	MihomoBinaryPath      string `mapstructure:"mihomo_binary_path"`
	MihomoConfigRoot      string `mapstructure:"mihomo_config_root"`
	UserSystemdRoot       string `mapstructure:"user_systemd_root"`
	RemoteGeoipURL        string `mapstructure:"remote_geoip_url"`
	RemoteGeositeURL      string `mapstructure:"remote_geosite_url"`

	MihomoConfig MihomoOverrides `mapstructure:"mihomo_config"`
}

// MihomoConfigPath returns the path of the managed mihomo config file.
func (c *Config) MihomoConfigPath() string {
	return filepath.Join(c.MihomoConfigRoot, "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mihomo_channel", "stable")
	v.SetDefault("mihoro_user_agent", "mihoro")
	v.SetDefault("mihomo_binary_path", "~/.local/bin/mihomo")
	v.SetDefault("mihomo_config_root", "~/.config/mihomo")
	v.SetDefault("user_systemd_root", "~/.config/systemd/user")
	v.SetDefault("remote_geoip_url", "https://github.com/MetaCubeX/meta-rules-dat/releases/download/latest/geoip.metadb")
	v.SetDefault("remote_geosite_url", "https://github.com/MetaCubeX/meta-rules-dat/releases/download/latest/geosite.dat")
}

// Load reads, validates, and tilde-expands the config file at path.
func Load(path string) (*Config, error) {
	expanded, err := ExpandTilde(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expanded); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %s not found: create it before running mihoro (see the example mihoro.toml)", expanded)
	}

	v := viper.New()
	v.SetConfigFile(expanded)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", expanded, err)
	}

	result, err := Validate(v.AllSettings())
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid config file %s:\n%s", expanded, result.Summary())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", expanded, err)
	}

	for _, p := range []*string{&cfg.MihomoBinaryPath, &cfg.MihomoConfigRoot, &cfg.UserSystemdRoot} {
		if *p, err = ExpandTilde(*p); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// ExpandTilde resolves a leading "~/" against the user's home directory.
func ExpandTilde(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
