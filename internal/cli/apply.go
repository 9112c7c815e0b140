package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply mihomo config overrides and restart mihomo.service",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMihoro()
		if err != nil {
			return err
		}
		return m.Apply()
	},
}
