package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/spencerwooo/mihoro/internal/mihoro"
	"github.com/spencerwooo/mihoro/internal/systemctl"
)

func init() {
	rootCmd.AddCommand(startCmd, stopCmd, statusCmd, restartCmd, logCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start mihomo.service with systemctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := systemctl.New().Start(mihoro.ServiceName).Execute(); err != nil {
			return err
		}
		fmt.Printf("mihoro: Started %s\n", mihoro.ServiceName)
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop mihomo.service with systemctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := systemctl.New().Stop(mihoro.ServiceName).Execute(); err != nil {
			return err
		}
		fmt.Printf("mihoro: Stopped %s\n", mihoro.ServiceName)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check mihomo.service status with systemctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		return systemctl.New().Status(mihoro.ServiceName).Execute()
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart mihomo.service with systemctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := systemctl.New().Restart(mihoro.ServiceName).Execute(); err != nil {
			return err
		}
		fmt.Printf("mihoro: Restarted %s\n", mihoro.ServiceName)
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"logs"},
	Short:   "Check mihomo.service logs with journalctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		jctl := exec.Command("journalctl", "--user", "-xeu", mihoro.ServiceName, "-n", "10", "-f")
		jctl.Stdin = os.Stdin
		jctl.Stdout = os.Stdout
		jctl.Stderr = os.Stderr
		return jctl.Run()
	},
}
