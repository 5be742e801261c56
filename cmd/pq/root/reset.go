package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with the starter quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset discards every quest and all XP; pass --yes to confirm")
			}
			ctx := context.Background()
			board, cleanup, err := openBoard(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := board.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconUndo+" Board reset"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", board.Level()))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total XP", board.XPTotal()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")

	return cmd
}
