package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var description string
	var xp string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Start a new quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			xpValue, err := engine.ParseXP(xp)
			if err != nil {
				return err
			}

			board, cleanup, err := openBoard(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := board.Add(ctx, engine.AddQuestInput{
				Title:       strings.Join(args, " "),
				Description: description,
				XP:          xpValue,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Quest started"),
				q.Title,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, id %s)", q.XP, q.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Quest description")
	cmd.Flags().StringVarP(&xp, "xp", "x", "", fmt.Sprintf("Experience reward (default %d)", engine.DefaultQuestXP))

	return cmd
}
