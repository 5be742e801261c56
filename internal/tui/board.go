package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"pixelquest/internal/engine"
)

// RunBoard opens the interactive board. The board must already be initialized.
func RunBoard(ctx context.Context, board *engine.Board, out io.Writer) error {
	m := newBoardModel(ctx, board)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
