// Package cli wires the wsfold commands to the engine.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput    bool
	workspaceFlag string
	verbosity     int
)

// rootCmd is the root command for wsfold.
var rootCmd = &cobra.Command{
	Use:     "wsfold",
	Version: "dev",
	Short:   "Toggle folder visibility in a multi-root workspace",
	Long: `wsfold hides and restores folders in a multi-root workspace descriptor
(.code-workspace file).

Hiding removes a folder entry from the descriptor's folder list and parks it
under a reserved settings key, so the editor stops displaying it; showing
moves it back to its original position. The last visible folder can never be
hidden.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version baked in at build time.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "",
		"Workspace descriptor file (default: discovered from the working directory, or $WSFOLD_WORKSPACE)")
	rootCmd.PersistentFlags().CountVar(&verbosity, "verbose", "Increase log verbosity (--verbose info, --verbose --verbose debug)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "visibility",
		Title: "Folder Visibility:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the wsfold version",
		Args:    cobra.NoArgs,
		GroupID: "tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	hideCmd.GroupID = "visibility"
	showCmd.GroupID = "visibility"
	listCmd.GroupID = "visibility"
	rootCmd.AddCommand(hideCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
