package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danhyun/wsfold/internal/engine"
)

var showDryRun bool

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Restore a hidden folder",
	Long: `Restore a hidden folder to the descriptor's folder list.

Without a path the most recently hidden folder is restored. The entry goes
back to the position it occupied when it was hidden. Use 'wsfold list' to see
which folders are hidden.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		req := &engine.ShowRequest{
			Location: descriptorLocation(),
			CWD:      cwd,
			DryRun:   showDryRun,
		}
		if len(args) == 1 {
			req.Path = args[0]
		}

		result, err := eng.Show(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.NoHidden {
			PrintInfo("No hidden folders to show")
			return nil
		}

		if result.DryRun {
			PrintInfo(fmt.Sprintf("Dry run - would restore %s (%d visible, %d hidden)",
				result.Restored, result.VisibleCount, result.HiddenCount))
			return nil
		}

		PrintSuccess(fmt.Sprintf("Restored %s (%d visible, %d hidden)",
			result.Restored, result.VisibleCount, result.HiddenCount))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showDryRun, "dry-run", false, "Show what would change without writing")
}
