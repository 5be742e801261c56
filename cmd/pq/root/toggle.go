package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

func requireID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("id is required")
	}
	return nil
}

type toggleFunc func(b *engine.Board, ctx context.Context, id string) (*engine.ToggleResult, error)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a quest between open and completed",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args[0], (*engine.Board).Toggle)
		},
	}
}

func runToggle(cmd *cobra.Command, id string, fn toggleFunc) error {
	ctx := context.Background()
	board, cleanup, err := openBoard(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	q, _ := board.Get(id)
	res, err := fn(board, ctx, id)
	if errors.Is(err, engine.ErrQuestNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No quest with id "+id))
		return nil
	}
	if err != nil {
		return err
	}
	printToggle(cmd.OutOrStdout(), q, res)
	return nil
}

func printToggle(w io.Writer, q engine.Quest, res *engine.ToggleResult) {
	name := fmt.Sprintf("%s %s", ui.Muted.Render("#"+res.QuestID), q.Title)
	if res.Completed {
		fmt.Fprintf(w, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), name, ui.Muted.Render(fmt.Sprintf("(%+d XP)", res.Delta)))
	} else {
		fmt.Fprintf(w, "%s %s %s\n", ui.Warn.Render(ui.IconUndo+" Reopened"), name, ui.Muted.Render(fmt.Sprintf("(%+d XP)", res.Delta)))
	}
	fmt.Fprintln(w, ui.LabelValue("XP", fmt.Sprintf("%d → %d", res.XPBefore, res.XPAfter)))
	fmt.Fprintln(w, ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
	switch {
	case res.LevelUp:
		fmt.Fprintln(w, ui.IconTrophy+" "+ui.BadgeLevelUp)
	case res.LevelDown:
		fmt.Fprintln(w, ui.Warn.Render(ui.IconWarn+" Level decreased"))
	}
}
