package mihoro

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spencerwooo/mihoro/internal/systemctl"
)

// unitTemplate is the systemd user unit mihoro installs for mihomo. The two
// placeholders are the binary path and the config root.
const unitTemplate = `[Unit]
Description=mihomo daemon, managed by mihoro
After=network-online.target

[Service]
Type=simple
ExecStart=%s -d %s
Restart=always
RestartSec=3

[Install]
WantedBy=default.target
`

// UnitFileContent renders the systemd unit for the given binary path and
// config root.
func UnitFileContent(binaryPath, configRoot string) string {
	return fmt.Sprintf(unitTemplate, binaryPath, configRoot)
}

// unitFilePath is where the rendered unit lands.
func (m *Mihoro) unitFilePath() string {
	return filepath.Join(m.Config.UserSystemdRoot, ServiceName)
}

// Setup performs the first-time installation: mihomo binary, remote config
// with overrides, geodata, and the systemd user unit, then enables and
// starts the service.
func (m *Mihoro) Setup(overwrite bool, archOverride string) error {
	if err := os.MkdirAll(m.Config.MihomoConfigRoot, 0755); err != nil {
		return fmt.Errorf("creating config root: %w", err)
	}

	if _, err := os.Stat(m.Config.MihomoBinaryPath); os.IsNotExist(err) || overwrite {
		if err := m.installCore(archOverride); err != nil {
			return err
		}
	} else {
		m.printf("mihomo binary already exists at %s, skipping (use --overwrite to force)", m.Config.MihomoBinaryPath)
	}

	if err := m.UpdateConfig(false); err != nil {
		return err
	}
	if err := m.UpdateGeodata(); err != nil {
		return err
	}

	if err := m.writeUnitFile(); err != nil {
		return err
	}
	if err := systemctl.New().DaemonReload().Execute(); err != nil {
		return err
	}
	if err := systemctl.New().Enable(ServiceName).Execute(); err != nil {
		return err
	}
	if err := systemctl.New().Start(ServiceName).Execute(); err != nil {
		return err
	}

	m.printf("Setup complete, %s is running", ServiceName)
	return nil
}

func (m *Mihoro) writeUnitFile() error {
	path := m.unitFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating systemd user directory: %w", err)
	}
	content := UnitFileContent(m.Config.MihomoBinaryPath, m.Config.MihomoConfigRoot)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing unit file %s: %w", path, err)
	}
	m.printf("Installed systemd unit at %s", path)
	return nil
}

// Apply re-applies the configured overrides to the managed mihomo config and
// restarts the service so they take effect.
func (m *Mihoro) Apply() error {
	if err := m.applyOverrides(); err != nil {
		return err
	}
	m.printf("Config overrides applied")

	m.printf("Restarting %s...", ServiceName)
	return m.restart()
}

// Uninstall stops and removes the managed service, binary, and config root.
// Service-manager failures are reported but do not stop the cleanup.
func (m *Mihoro) Uninstall() error {
	if err := systemctl.New().Stop(ServiceName).Execute(); err != nil {
		m.printf("Warning: failed to stop %s: %v", ServiceName, err)
	}
	if err := systemctl.New().Disable(ServiceName).Execute(); err != nil {
		m.printf("Warning: failed to disable %s: %v", ServiceName, err)
	}

	for _, path := range []string{m.unitFilePath(), m.Config.MihomoBinaryPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		m.printf("Removed %s", path)
	}

	if err := systemctl.New().DaemonReload().Execute(); err != nil {
		m.printf("Warning: daemon-reload failed: %v", err)
	}

	if err := os.RemoveAll(m.Config.MihomoConfigRoot); err != nil {
		return fmt.Errorf("removing config root: %w", err)
	}
	m.printf("Removed %s", m.Config.MihomoConfigRoot)

	m.printf("mihoro uninstall complete (the mihoro.toml config file is kept)")
	return nil
}
