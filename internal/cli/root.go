package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spencerwooo/mihoro/internal/config"
	"github.com/spencerwooo/mihoro/internal/mihoro"
	"github.com/spencerwooo/mihoro/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var mihoroConfigPath string

var rootCmd = &cobra.Command{
	Use:   "mihoro",
	Short: "Mihomo proxy manager for Linux",
	Long: `mihoro manages the mihomo proxy engine on this machine: it downloads the
binary matching the CPU architecture and release channel, keeps the remote
config and geodata fresh, and controls the mihomo systemd user service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// No build info means no meaningful version comparison.
		if buildVersion == "" {
			return
		}

		// Skip the update hint for commands that manage versions themselves
		// or produce machine-readable output.
		switch cmd.Name() {
		case "upgrade", "version", "completions", "bash", "zsh", "fish":
			return
		}

		cacheDir, err := updater.CacheDir()
		if err != nil {
			return
		}
		updater.New(buildVersion).CheckAndPrintBanner(os.Stderr, cacheDir)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&mihoroConfigPath, "mihoro-config", "m", config.DefaultPath, "Path to mihoro config file")
}

// newMihoro builds the orchestrator from the configured mihoro.toml path.
func newMihoro() (*mihoro.Mihoro, error) {
	return mihoro.New(mihoroConfigPath)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
