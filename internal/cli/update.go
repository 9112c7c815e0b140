package cli

import (
	"github.com/spf13/cobra"
)

var (
	updateConfig  bool
	updateCore    bool
	updateGeodata bool
	updateAll     bool
	updateArch    string
)

func init() {
	updateCmd.Flags().BoolVar(&updateConfig, "config", false, "Update remote config")
	updateCmd.Flags().BoolVar(&updateCore, "core", false, "Update mihomo core binary")
	updateCmd.Flags().BoolVar(&updateGeodata, "geodata", false, "Update geodata")
	updateCmd.Flags().BoolVar(&updateAll, "all", false, "Update everything: config, geodata, and mihomo core binary")
	updateCmd.Flags().StringVar(&updateArch, "arch", "", "Override architecture detection (used with --core or --all)")

	updateCmd.MarkFlagsMutuallyExclusive("all", "config")
	updateCmd.MarkFlagsMutuallyExclusive("all", "core")
	updateCmd.MarkFlagsMutuallyExclusive("all", "geodata")

	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mihomo components (config by default)",
	Long: `Updates the managed mihomo installation.

  mihoro update             # update remote config and restart
  mihoro update --core      # update the mihomo binary and restart
  mihoro update --geodata   # update geodata only
  mihoro update --all       # config, geodata, core, then one restart`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMihoro()
		if err != nil {
			return err
		}

		switch {
		case updateAll:
			// Stage failures are reported but only a failed restart makes
			// the command itself fail.
			report := m.UpdateAll(updateArch)
			return report.RestartErr
		case updateCore:
			return m.UpdateCore(updateArch, true)
		case updateGeodata:
			return m.UpdateGeodata()
		default:
			// Explicit --config or no flags at all.
			return m.UpdateConfig(true)
		}
	},
}
