package mihoro

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spencerwooo/mihoro/internal/download"
	"github.com/spencerwooo/mihoro/internal/mihomo"
	"github.com/spencerwooo/mihoro/internal/platform"
)

// State names the steps of a full update run.
type State int

const (
	StateIdle State = iota
	StateUpdatingConfig
	StateUpdatingGeodata
	StateUpdatingCore
	StateRestarting
	StateDone
)

// StageError records a failed stage of a full update.
type StageError struct {
	Stage string
	Err   error
}

// UpdateReport is the outcome of a full update run. Stage failures do not
// stop the run, so a report can carry several errors.
type UpdateReport struct {
	Errors     []StageError
	RestartErr error

	// FinalState is StateDone after every run; errors advance the machine
	// instead of halting it.
	FinalState State
}

// Failed reports whether any stage (or the final restart) failed.
func (r *UpdateReport) Failed() bool {
	return len(r.Errors) > 0 || r.RestartErr != nil
}

// UpdateConfig downloads the remote config, applies the configured overrides
// on top, and optionally restarts the service.
func (m *Mihoro) UpdateConfig(restart bool) error {
	dest := m.Config.MihomoConfigPath()
	if err := download.ToFile(m.client, m.Config.RemoteConfigURL, dest, m.Config.MihoroUserAgent); err != nil {
		return err
	}
	if err := m.applyOverrides(); err != nil {
		return err
	}
	m.printf("Remote config updated at %s", dest)

	if restart {
		m.printf("Restarting %s...", ServiceName)
		return m.restart()
	}
	return nil
}

// UpdateGeodata refreshes the GeoIP and GeoSite databases in the mihomo
// config root.
func (m *Mihoro) UpdateGeodata() error {
	targets := []struct {
		url  string
		name string
	}{
		{m.Config.RemoteGeoipURL, "geoip.metadb"},
		{m.Config.RemoteGeositeURL, "geosite.dat"},
	}

	for _, t := range targets {
		dest := filepath.Join(m.Config.MihomoConfigRoot, t.name)
		if err := download.ToFile(m.client, t.url, dest, m.Config.MihoroUserAgent); err != nil {
			return err
		}
		m.printf("Updated %s", dest)
	}
	return nil
}

// UpdateCore resolves the mihomo download URL, installs the binary, and
// optionally restarts the service.
func (m *Mihoro) UpdateCore(archOverride string, restart bool) error {
	if err := m.installCore(archOverride); err != nil {
		return err
	}
	if restart {
		m.printf("Restarting %s...", ServiceName)
		return m.restart()
	}
	return nil
}

// installCore downloads and installs the mihomo binary without touching the
// service.
func (m *Mihoro) installCore(archOverride string) error {
	url, err := mihomo.ResolveBinaryURL(m.client, m.resolveConfig(), archOverride, m.out)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "mihoro-core-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	archive := filepath.Join(tmpDir, filepath.Base(url))
	if err := download.ToFile(m.client, url, archive, m.Config.MihoroUserAgent); err != nil {
		return err
	}

	dest := m.Config.MihomoBinaryPath
	if strings.HasSuffix(archive, ".gz") {
		if err := download.Gunzip(archive, dest, platform.BinaryPerm); err != nil {
			return err
		}
	} else {
		// An explicit binary URL may point at an uncompressed binary.
		if err := copyFile(archive, dest); err != nil {
			return err
		}
	}
	if err := platform.Chmod(dest, platform.BinaryPerm); err != nil {
		return fmt.Errorf("marking %s executable: %w", dest, err)
	}

	m.printf("Installed mihomo binary at %s", dest)
	return nil
}

// UpdateAll runs the staged full update: config, geodata, core, then exactly
// one service restart. A stage failure is reported and the run continues;
// nothing is retried or rolled back.
func (m *Mihoro) UpdateAll(archOverride string) *UpdateReport {
	stages := []stage{
		{StateUpdatingConfig, "config", func() error { return m.UpdateConfig(false) }},
		{StateUpdatingGeodata, "geodata", func() error { return m.UpdateGeodata() }},
		{StateUpdatingCore, "core", func() error { return m.UpdateCore(archOverride, false) }},
	}
	return runStages(m.out, stages, m.restart)
}

type stage struct {
	state State
	name  string
	run   func() error
}

// runStages executes every stage in order regardless of individual failures,
// then issues a single restart. Factored out of UpdateAll so the isolation
// policy is testable with stubbed stages.
func runStages(out io.Writer, stages []stage, restart func() error) *UpdateReport {
	report := &UpdateReport{FinalState: StateIdle}

	for _, s := range stages {
		report.FinalState = s.state
		fmt.Fprintf(out, "%s Updating %s...\n", prefix, s.name)
		if err := s.run(); err != nil {
			fmt.Fprintf(out, "%s Failed to update %s: %v\n", prefix, s.name, err)
			report.Errors = append(report.Errors, StageError{Stage: s.name, Err: err})
		}
	}

	report.FinalState = StateRestarting
	fmt.Fprintf(out, "%s Restarting %s...\n", prefix, ServiceName)
	if err := restart(); err != nil {
		fmt.Fprintf(out, "%s Failed to restart %s: %v\n", prefix, ServiceName, err)
		report.RestartErr = err
	}

	report.FinalState = StateDone
	return report
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
