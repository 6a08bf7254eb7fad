package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"a11y-lint/src/controller"
	"a11y-lint/src/util"
)

func (h *Handler) fixCmd() *cobra.Command {
	var (
		filePath string
		line     int
		apply    bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Suggest alt text for an image missing it",
		Long: "Asks the configured text-generation service for alt text for the image on the " +
			"given line and prints the resulting single-line edit; --apply writes it back to the file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			repairCtrl := controller.NewRepairController(h.cfg)
			edit, err := repairCtrl.SuggestAlt(ctx, filePath, line)
			if err != nil {
				util.Error("Repair failed: %v", err)
				return fmt.Errorf("no edit applied, %s is unchanged: %w", filePath, err)
			}

			fmt.Printf("Suggested replacement for %s:%d\n\n  %s\n\n", filePath, line, edit.NewText)

			if !apply {
				fmt.Println("Run again with --apply to write the change.")
				return nil
			}

			if err := repairCtrl.ApplyEdit(filePath, edit); err != nil {
				return fmt.Errorf("applying edit: %w", err)
			}
			fmt.Printf("Updated %s:%d\n", filePath, line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "File containing the image (required)")
	cmd.Flags().IntVarP(&line, "line", "l", 0, "1-based line number of the image (required)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Write the suggested edit back to the file")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 60*time.Second, "Request timeout")

	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("line")

	return cmd
}
