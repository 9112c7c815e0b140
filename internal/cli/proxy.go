package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/spencerwooo/mihoro/internal/proxy"
)

func init() {
	proxyCmd.AddCommand(proxyExportCmd, proxyExportLanCmd, proxyUnsetCmd)
	rootCmd.AddCommand(proxyCmd)
}

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Output proxy export commands",
}

// printAndCopy prints a shell snippet and puts it on the clipboard. Clipboard
// failures (headless hosts without a display) only warn.
func printAndCopy(snippet string) {
	fmt.Println(snippet)
	if err := clipboard.WriteAll(snippet); err != nil {
		fmt.Fprintf(os.Stderr, "mihoro: Could not copy to clipboard: %v\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, "mihoro: Copied to clipboard")
}

var proxyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Output and copy proxy export shell commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMihoro()
		if err != nil {
			return err
		}
		httpPort, socksPort := m.ProxyPorts()
		printAndCopy(proxy.ExportCommands("127.0.0.1", httpPort, socksPort))
		return nil
	},
}

var proxyExportLanCmd = &cobra.Command{
	Use:   "export-lan",
	Short: "Output and copy proxy export shell commands for LAN access",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMihoro()
		if err != nil {
			return err
		}
		ip, err := proxy.LanIP()
		if err != nil {
			return err
		}
		httpPort, socksPort := m.ProxyPorts()
		printAndCopy(proxy.ExportCommands(ip, httpPort, socksPort))
		return nil
	},
}

var proxyUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Output and copy proxy unset shell commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		printAndCopy(proxy.UnsetCommands())
		return nil
	},
}
