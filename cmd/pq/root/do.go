package root

import (
	"github.com/spf13/cobra"

	"pixelquest/internal/engine"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args[0], (*engine.Board).Complete)
		},
	}

	return cmd
}
