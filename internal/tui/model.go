package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pixelquest/internal/engine"
	"pixelquest/internal/ui"
)

type boardModel struct {
	ctx   context.Context
	board *engine.Board

	width  int
	height int

	state    engine.State
	selected int

	modal modalState
	form  questForm

	lastLog string
	err     error
}

func newBoardModel(ctx context.Context, board *engine.Board) boardModel {
	return boardModel{
		ctx:     ctx,
		board:   board,
		state:   board.Snapshot(),
		modal:   modalClosed,
		form:    newQuestForm(),
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal == modalOpen {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}
	if m.modal == modalOpen {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.state.Quests)-1 {
			m.selected++
		}
	case "n", "+":
		m = m.openModal()
	case "c", " ", "space", "enter":
		m = m.toggleSelected()
	}
	return m, nil
}

func (m boardModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.cancelModal()
		return m, nil
	case "enter":
		m = m.submitModal()
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// openModal: Closed → Open.
func (m boardModel) openModal() boardModel {
	m.modal = modalOpen
	m.form = newQuestForm()
	return m
}

// cancelModal: Open → Closed without adding anything.
func (m boardModel) cancelModal() boardModel {
	m.modal = modalClosed
	m.form = newQuestForm()
	m.lastLog = "New quest cancelled."
	return m
}

// submitModal: Open → Closed after a successful Add. A rejected submission
// keeps the modal open with the error shown.
func (m boardModel) submitModal() boardModel {
	in, err := m.form.input()
	if err != nil {
		m.form.err = err.Error()
		return m
	}
	q, err := m.board.Add(m.ctx, in)
	switch {
	case engine.IsValidation(err):
		m.form.err = err.Error()
		return m
	case err != nil:
		m.err = err
		m.form.err = "could not save quest, press enter to retry"
		m.lastLog = "Add failed: " + err.Error()
		return m
	}
	m.err = nil
	m.state = m.board.Snapshot()
	m.selected = len(m.state.Quests) - 1
	m.modal = modalClosed
	m.form = newQuestForm()
	m.lastLog = fmt.Sprintf("Quest started: %s (+%d XP on completion)", q.Title, q.XP)
	return m
}

func (m boardModel) toggleSelected() boardModel {
	if m.selected < 0 || m.selected >= len(m.state.Quests) {
		return m
	}
	id := m.state.Quests[m.selected].ID
	res, err := m.board.Toggle(m.ctx, id)
	switch {
	case errors.Is(err, engine.ErrQuestNotFound):
		m.lastLog = "Quest not found."
		return m
	case err != nil:
		m.err = err
		m.lastLog = "Toggle failed: " + err.Error()
		return m
	}
	m.err = nil
	m.state = m.board.Snapshot()
	if res.Completed {
		m.lastLog = fmt.Sprintf("Completed: %+d XP (level %d → %d)", res.Delta, res.LevelBefore, res.LevelAfter)
		if res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
	} else {
		m.lastLog = fmt.Sprintf("Reopened: %+d XP (level %d → %d)", res.Delta, res.LevelBefore, res.LevelAfter)
	}
	return m
}

func (m boardModel) View() string {
	header := ui.RenderHeader(m.state, m.barWidth())
	if m.modal == modalOpen {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", m.renderModal(), m.renderFooter())
	}

	top := lipgloss.JoinHorizontal(lipgloss.Center,
		ui.H2.Render("Active Quests"), "   ", ui.ButtonComplete.Render(ui.LabelNewQuest),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		top,
		ui.RenderQuestList(m.state.Quests, m.selected),
		m.renderFooter(),
	)
}

func (m boardModel) renderModal() string {
	labels := [fieldCount]string{"Quest Title", "Description", "XP"}
	var b strings.Builder
	b.WriteString(ui.Title.Render("New Quest"))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		b.WriteString(ui.Muted.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n\n")
	}
	if m.form.err != "" {
		b.WriteString(ui.Bad.Render(ui.IconWarn + " " + m.form.err))
		b.WriteString("\n\n")
	}
	b.WriteString(ui.ButtonDone.Render(ui.LabelStart) + ui.Muted.Render(" enter") + "   ")
	b.WriteString(ui.ButtonCancel.Render(ui.LabelCancel) + ui.Muted.Render(" esc"))
	return ui.Modal.Render(b.String())
}

func (m boardModel) renderFooter() string {
	keys := "↑/↓ move · space toggle · n new quest · q quit"
	if m.modal == modalOpen {
		keys = "tab next field · enter start · esc cancel"
	}
	log := m.lastLog
	if m.err != nil {
		log = ui.Bad.Render(ui.IconError + " " + log)
	}
	return "\n" + log + "\n" + ui.Muted.Render(keys)
}

func (m boardModel) barWidth() int {
	if m.width > 0 && m.width < 60 {
		return max(m.width/3, 3)
	}
	return 30
}
