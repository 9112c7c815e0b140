package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spencerwooo/mihoro/internal/cron"
)

func init() {
	cronCmd.AddCommand(cronEnableCmd, cronDisableCmd, cronStatusCmd)
	rootCmd.AddCommand(cronCmd)
}

var cronCmd = &cobra.Command{
	Use:   "cron",
	Short: "Manage the auto-update cron job",
}

var cronEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the auto-update cron job",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cron.Enable(); err != nil {
			return err
		}
		fmt.Printf("mihoro: Auto-update cron job enabled (%s)\n", cron.Schedule)
		return nil
	},
}

var cronDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the auto-update cron job",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cron.Disable(); err != nil {
			return err
		}
		fmt.Println("mihoro: Auto-update cron job disabled")
		return nil
	},
}

var cronStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the auto-update cron job status",
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := cron.Enabled()
		if err != nil {
			return err
		}
		if enabled {
			fmt.Printf("mihoro: Auto-update cron job is enabled (%s)\n", cron.Schedule)
		} else {
			fmt.Println("mihoro: Auto-update cron job is disabled")
		}
		return nil
	},
}
