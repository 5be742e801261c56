package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"pixelquest/internal/ui"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one quest with its description rendered as markdown",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			board, cleanup, err := openBoard(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			q, ok := board.Get(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No quest with id "+args[0]))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, q.Title))
			fmt.Fprintln(out, ui.LabelValue("ID", q.ID))
			fmt.Fprintln(out, ui.LabelValue("Reward", fmt.Sprintf("+%d XP", q.XP)))
			fmt.Fprintln(out, ui.LabelValue("Status", ui.StatusText(q.Completed)))

			if strings.TrimSpace(q.Description) == "" {
				return nil
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			md, err := r.Render(q.Description)
			if err != nil {
				return fmt.Errorf("render description: %w", err)
			}
			fmt.Fprint(out, md)
			return nil
		},
	}

	return cmd
}
