package cli

import (
	"strings"
	"testing"
)

func TestUpdateAllConflictsWithScopedFlags(t *testing.T) {
	for _, flag := range []string{"--config", "--core", "--geodata"} {
		rootCmd.SetArgs([]string{"update", "--all", flag})
		err := rootCmd.Execute()
		if err == nil {
			t.Errorf("update --all %s succeeded, want a flag conflict error", flag)
			continue
		}
		if !strings.Contains(err.Error(), "none of the others can be") {
			t.Errorf("update --all %s error = %q, want a mutual-exclusion error", flag, err)
		}

		// Reset flag state for the next iteration.
		updateAll = false
		updateConfig = false
		updateCore = false
		updateGeodata = false
		rootCmd.SetArgs(nil)
	}
}
