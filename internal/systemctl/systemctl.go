// Package systemctl shells out to the user's service manager for mihomo
// service control. Commands run against the user session (systemctl --user).
package systemctl

import (
	"fmt"
	"os"
	"os/exec"
)

// Systemctl builds up a single systemctl invocation. Methods append a verb
// and unit, and Execute runs the accumulated command with inherited stdio.
type Systemctl struct {
	args []string
}

// New returns a builder targeting the user service manager.
func New() *Systemctl {
	return &Systemctl{args: []string{"--user"}}
}

func (s *Systemctl) verb(verb string, unit ...string) *Systemctl {
	s.args = append(s.args, verb)
	s.args = append(s.args, unit...)
	return s
}

func (s *Systemctl) Start(unit string) *Systemctl   { return s.verb("start", unit) }
func (s *Systemctl) Stop(unit string) *Systemctl    { return s.verb("stop", unit) }
func (s *Systemctl) Restart(unit string) *Systemctl { return s.verb("restart", unit) }
func (s *Systemctl) Status(unit string) *Systemctl  { return s.verb("status", unit) }
func (s *Systemctl) Enable(unit string) *Systemctl  { return s.verb("enable", unit) }
func (s *Systemctl) Disable(unit string) *Systemctl { return s.verb("disable", unit) }
func (s *Systemctl) DaemonReload() *Systemctl       { return s.verb("daemon-reload") }

// Args returns the argv that Execute will pass to systemctl.
func (s *Systemctl) Args() []string {
	return s.args
}

// Execute runs the built command. Stdout and stderr flow straight through to
// the terminal so `mihoro status` looks like running systemctl by hand.
func (s *Systemctl) Execute() error {
	cmd := exec.Command("systemctl", s.args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("systemctl %v: %w", s.args, err)
	}
	return nil
}
