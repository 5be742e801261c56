package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			board, cleanup, err := openBoard(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			s := board.Snapshot()
			out := cmd.OutOrStdout()
			done, open := s.Counts()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Hero Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", s.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next level at %d, %d to go)",
				s.XPTotal, engine.XPRequiredForLevel(s.Level+1), engine.XPToNextLevel(s.XPTotal))))
			fmt.Fprintln(out, ui.LabelValue("Progress", fmt.Sprintf("%s %d%%", ui.ProgressBar(s.Progress, engine.XPPerLevel, 20), s.Progress)))
			fmt.Fprintln(out, ui.LabelValue("Quests", fmt.Sprintf("%d completed, %d open", done, open)))
			fmt.Fprintln(out, "")

			checker := engine.NewAchievementChecker(s)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, a := range checker.GetAchievements() {
				mark := ui.Muted.Render("·")
				name := ui.Muted.Render(a.Name)
				if a.Earned {
					mark = a.Icon
					name = ui.Gold.Render(a.Name)
				}
				fmt.Fprintf(out, "- %s %s %s\n", mark, name, ui.Muted.Render(a.Description))
			}
			return nil
		},
	}

	return cmd
}
