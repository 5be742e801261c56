package root

import (
	"context"

	"github.com/spf13/cobra"

	"pixelquest/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			board, cleanup, err := openBoard(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, board, cmd.OutOrStdout())
		},
	}

	return cmd
}
