package cli

import (
	"github.com/spf13/cobra"
)

var (
	setupOverwrite bool
	setupArch      string
)

func init() {
	setupCmd.Flags().BoolVar(&setupOverwrite, "overwrite", false, "Force download mihomo binary even if it already exists")
	setupCmd.Flags().StringVar(&setupArch, "arch", "", "Override architecture detection (e.g. amd64-v3, armv7)")

	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up mihoro by downloading the mihomo binary and remote config",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMihoro()
		if err != nil {
			return err
		}
		return m.Setup(setupOverwrite, setupArch)
	},
}
