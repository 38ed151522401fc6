package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danhyun/wsfold/internal/engine"
)

var hideDryRun bool

var hideCmd = &cobra.Command{
	Use:   "hide <path>",
	Short: "Hide a folder from the workspace",
	Long: `Hide a folder by moving its entry out of the descriptor's folder list.

The entry is parked under a reserved settings key together with its position,
so 'wsfold show' can restore it in place. Hiding the last visible folder is
refused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		req := &engine.HideRequest{
			Location: descriptorLocation(),
			CWD:      cwd,
			Path:     args[0],
			DryRun:   hideDryRun,
		}

		result, err := eng.Hide(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.DryRun {
			PrintInfo(fmt.Sprintf("Dry run - would hide %s (%d visible, %d hidden)",
				result.Hidden, result.VisibleCount, result.HiddenCount))
			return nil
		}

		PrintSuccess(fmt.Sprintf("Hidden %s (%d visible, %d hidden)",
			result.Hidden, result.VisibleCount, result.HiddenCount))
		return nil
	},
}

func init() {
	hideCmd.Flags().BoolVar(&hideDryRun, "dry-run", false, "Show what would change without writing")
}
