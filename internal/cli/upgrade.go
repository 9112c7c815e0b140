package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spencerwooo/mihoro/internal/updater"
)

var (
	upgradeYes    bool
	upgradeCheck  bool
	upgradeTarget string
)

func init() {
	upgradeCmd.Flags().BoolVarP(&upgradeYes, "yes", "y", false, "Skip confirmation prompt")
	upgradeCmd.Flags().BoolVar(&upgradeCheck, "check", false, "Only check for updates, don't install")
	upgradeCmd.Flags().StringVar(&upgradeTarget, "target", "", "Override target platform (e.g. linux_arm64)")

	rootCmd.AddCommand(upgradeCmd)
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade mihoro to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := updater.New(buildVersion)

		fmt.Fprintln(os.Stderr, "mihoro: Checking for mihoro updates...")
		release, err := u.CheckLatestVersion()
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			// Dev builds have no comparable version; treat them as
			// always upgradeable.
			if buildVersion == "dev" {
				available = true
			} else {
				return fmt.Errorf("comparing versions: %w", err)
			}
		}

		saveVersionCache(release.Version, available)

		if upgradeCheck {
			if available {
				fmt.Printf("mihoro: New version available: %s\n", release.Version)
				fmt.Println("-> Run `mihoro upgrade` to update")
			} else {
				fmt.Printf("mihoro: You're running the latest version (%s)\n", buildVersion)
			}
			return nil
		}

		if !available {
			fmt.Printf("mihoro: Already running the latest version (%s)\n", buildVersion)
			return nil
		}

		if !upgradeYes && !confirm(fmt.Sprintf("Upgrade mihoro %s -> %s?", buildVersion, release.Version)) {
			fmt.Println("mihoro: Upgrade cancelled")
			return nil
		}

		tmpDir, err := os.MkdirTemp("", "mihoro-upgrade-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		fmt.Fprintf(os.Stderr, "mihoro: Downloading mihoro %s...\n", release.Version)
		archivePath, err := u.DownloadArchive(release, upgradeTarget, tmpDir)
		if err != nil {
			return fmt.Errorf("downloading release: %w", err)
		}

		binPath, err := updater.ExtractBinary(archivePath, tmpDir)
		if err != nil {
			return fmt.Errorf("extracting binary: %w", err)
		}

		if err := updater.Apply(binPath); err != nil {
			return err
		}

		fmt.Printf("mihoro: Updated to version %s\n", release.Version)
		fmt.Println("mihoro: Please restart mihoro for the new version to take effect")
		return nil
	},
}

func saveVersionCache(latest string, available bool) {
	cacheDir, err := updater.CacheDir()
	if err != nil {
		return
	}
	_ = updater.SaveCache(cacheDir, &updater.VersionCache{
		LatestVersion:   latest,
		CurrentVersion:  buildVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
