package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danhyun/wsfold/internal/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible and hidden folders",
	Long:  `List the workspace's visible folders and the hidden folders available to restore.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		req := &engine.ListRequest{
			Location: descriptorLocation(),
			CWD:      cwd,
		}

		result, err := eng.List(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintInfo(fmt.Sprintf("Workspace: %s", result.Location))
		fmt.Println()

		PrintHeader(fmt.Sprintf("Visible (%d):", len(result.Visible)))
		for _, f := range result.Visible {
			PrintItem(f.Path, f.Name)
		}

		fmt.Println()
		PrintHeader(fmt.Sprintf("Hidden (%d):", len(result.Hidden)))
		if len(result.Hidden) == 0 {
			PrintItem("none", "")
		}
		for _, h := range result.Hidden {
			annotation := h.Name
			if !h.HiddenAt.IsZero() {
				if annotation != "" {
					annotation += ", "
				}
				annotation += "hidden " + h.HiddenAt.Format("2006-01-02 15:04")
			}
			PrintItem(h.Path, annotation)
		}

		return nil
	},
}
