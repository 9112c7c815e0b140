package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	completionsCmd.AddCommand(
		&cobra.Command{
			Use:   "bash",
			Short: "Generate bash completions",
			RunE: func(cmd *cobra.Command, args []string) error {
				return rootCmd.GenBashCompletionV2(os.Stdout, true)
			},
		},
		&cobra.Command{
			Use:   "zsh",
			Short: "Generate zsh completions",
			RunE: func(cmd *cobra.Command, args []string) error {
				return rootCmd.GenZshCompletion(os.Stdout)
			},
		},
		&cobra.Command{
			Use:   "fish",
			Short: "Generate fish completions",
			RunE: func(cmd *cobra.Command, args []string) error {
				return rootCmd.GenFishCompletion(os.Stdout, true)
			},
		},
	)
	rootCmd.AddCommand(completionsCmd)
}

var completionsCmd = &cobra.Command{
	Use:   "completions",
	Short: "Generate shell completions for mihoro",
}
