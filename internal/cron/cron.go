// Package cron manages the user's crontab entry that runs `mihoro update
// --all` on a schedule. The crontab itself is read and written through the
// crontab binary; the entry formatting and editing logic is kept pure so it
// can be tested without touching the real crontab.
package cron

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Schedule for the auto-update job: daily at 04:00.
const Schedule = "0 4 * * *"

// tag identifies the crontab line managed by mihoro. Enable refuses to add a
// second line carrying it, and Disable removes every line that does.
const tag = "mihoro update --all"

// Entry formats the crontab line for the given mihoro executable and log
// file.
func Entry(execPath, logPath string) string {
	return fmt.Sprintf("%s %s update --all >> %s 2>&1", Schedule, execPath, logPath)
}

// Contains reports whether the crontab content already has a mihoro
// auto-update entry.
func Contains(crontab string) bool {
	for _, line := range strings.Split(crontab, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.Contains(trimmed, tag) {
			return true
		}
	}
	return false
}

// Add appends the entry to the crontab content unless one is already
// present.
func Add(crontab, entry string) string {
	if Contains(crontab) {
		return crontab
	}
	out := strings.TrimRight(crontab, "\n")
	if out != "" {
		out += "\n"
	}
	return out + entry + "\n"
}

// Remove strips every mihoro auto-update entry from the crontab content and
// reports whether anything was removed.
func Remove(crontab string) (string, bool) {
	var kept []string
	removed := false
	for _, line := range strings.Split(strings.TrimRight(crontab, "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") && strings.Contains(trimmed, tag) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	out := strings.Join(kept, "\n")
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if strings.TrimSpace(out) == "" {
		out = ""
	}
	return out, removed
}

// LogPath returns the file the scheduled run appends its output to.
func LogPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "mihoro", "cron.log"), nil
}

// Enable installs the auto-update entry into the user's crontab.
func Enable() error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving mihoro executable: %w", err)
	}
	logPath, err := LogPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	current, err := readCrontab()
	if err != nil {
		return err
	}
	if Contains(current) {
		return nil
	}
	return writeCrontab(Add(current, Entry(execPath, logPath)))
}

// Disable removes the auto-update entry from the user's crontab. It is not
// an error if no entry exists.
func Disable() error {
	current, err := readCrontab()
	if err != nil {
		return err
	}
	updated, removed := Remove(current)
	if !removed {
		return nil
	}
	return writeCrontab(updated)
}

// Enabled reports whether the user's crontab carries the auto-update entry.
func Enabled() (bool, error) {
	current, err := readCrontab()
	if err != nil {
		return false, err
	}
	return Contains(current), nil
}

// readCrontab returns the current user crontab, or an empty string when no
// crontab is installed yet.
func readCrontab() (string, error) {
	out, err := exec.Command("crontab", "-l").CombinedOutput()
	if err != nil {
		if strings.Contains(string(out), "no crontab") {
			return "", nil
		}
		return "", fmt.Errorf("reading crontab: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

func writeCrontab(content string) error {
	cmd := exec.Command("crontab", "-")
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("writing crontab: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
