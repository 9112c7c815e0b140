package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall and remove mihomo and its managed files",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMihoro()
		if err != nil {
			return err
		}
		return m.Uninstall()
	},
}
