package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			board, cleanup, err := openBoard(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			s := board.Snapshot()
			out := cmd.OutOrStdout()
			if !compact {
				fmt.Fprintln(out, ui.RenderBoard(s))
				return nil
			}
			for _, q := range s.Quests {
				fmt.Fprintf(out, "%s %-8s %s %s\n",
					ui.Muted.Render(q.ID),
					ui.ToggleLabel(q.Completed),
					q.Title,
					ui.Muted.Render(fmt.Sprintf("+%d XP", q.XP)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "One line per quest")

	return cmd
}
