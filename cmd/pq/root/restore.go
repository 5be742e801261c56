package root

import (
	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Reopen a completed quest (undo completion)",
		Long: `Reopen a completed quest.

This will:
- Mark the quest as not completed
- Deduct the XP it awarded (the total never drops below 0)

Use this to fix accidental completions.`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args[0], (*engine.Board).Restore)
		},
	}

	return cmd
}
