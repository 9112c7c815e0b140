// Package mihoro orchestrates the mihomo installation on this machine:
// first-time setup, config/geodata/core updates, applying config overrides,
// and uninstalling. Service control is delegated to systemctl and the
// download-URL resolution to the mihomo package.
package mihoro

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spencerwooo/mihoro/internal/config"
	"github.com/spencerwooo/mihoro/internal/mihomo"
	"github.com/spencerwooo/mihoro/internal/systemctl"
)

// ServiceName is the systemd user unit mihoro manages.
const ServiceName = "mihomo.service"

const prefix = "mihoro:"

// Mihoro drives updates for one parsed configuration.
type Mihoro struct {
	Config  *config.Config
	Channel mihomo.Channel

	client  *http.Client
	out     io.Writer
	restart func() error
}

// Option configures a Mihoro.
type Option func(*Mihoro)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(m *Mihoro) {
		m.client = c
	}
}

// WithOutput redirects progress output away from stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Mihoro) {
		m.out = w
	}
}

// WithRestartFunc replaces the service restart action (useful for testing).
func WithRestartFunc(f func() error) Option {
	return func(m *Mihoro) {
		m.restart = f
	}
}

// New loads and validates the config file at configPath and returns an
// orchestrator bound to it.
func New(configPath string, opts ...Option) (*Mihoro, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	channel, err := mihomo.ParseChannel(cfg.MihomoChannel)
	if err != nil {
		return nil, err
	}

	m := &Mihoro{
		Config:  cfg,
		Channel: channel,
		client:  http.DefaultClient,
		out:     os.Stdout,
	}
	m.restart = func() error {
		return systemctl.New().Restart(ServiceName).Execute()
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Mihoro) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, prefix+" "+format+"\n", args...)
}

// resolveConfig is the read-only snapshot the URL resolver consumes.
func (m *Mihoro) resolveConfig() mihomo.ResolveConfig {
	return mihomo.ResolveConfig{
		ExplicitBinaryURL: m.Config.RemoteMihomoBinaryURL,
		Arch:              m.Config.MihomoArch,
		Channel:           m.Channel,
		UserAgent:         m.Config.MihoroUserAgent,
	}
}

// ProxyPorts returns the HTTP and socks ports terminal sessions should use.
// A configured mixed port serves both protocols and wins over the dedicated
// ports.
func (m *Mihoro) ProxyPorts() (httpPort, socksPort int) {
	o := m.Config.MihomoConfig
	if o.MixedPort != 0 {
		return o.MixedPort, o.MixedPort
	}
	return o.Port, o.SocksPort
}
