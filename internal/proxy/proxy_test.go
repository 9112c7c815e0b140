package proxy

import (
	"strings"
	"testing"
)

func TestExportCommands(t *testing.T) {
	got := ExportCommands("127.0.0.1", 7890, 7891)
	want := "export https_proxy=http://127.0.0.1:7890 http_proxy=http://127.0.0.1:7890 all_proxy=socks5://127.0.0.1:7891"
	if got != want {
		t.Errorf("ExportCommands = %q, want %q", got, want)
	}
}

func TestExportCommandsMixedPort(t *testing.T) {
	// A mixed port serves both protocols, so both URLs carry the same port.
	got := ExportCommands("192.168.1.10", 7893, 7893)
	if !strings.Contains(got, "http://192.168.1.10:7893") || !strings.Contains(got, "socks5://192.168.1.10:7893") {
		t.Errorf("ExportCommands = %q", got)
	}
}

func TestUnsetCommands(t *testing.T) {
	got := UnsetCommands()
	for _, v := range []string{"https_proxy", "http_proxy", "all_proxy"} {
		if !strings.Contains(got, v) {
			t.Errorf("UnsetCommands %q is missing %s", got, v)
		}
	}
	if !strings.HasPrefix(got, "unset ") {
		t.Errorf("UnsetCommands %q does not start with unset", got)
	}
}
