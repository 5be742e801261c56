package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelquest/internal/engine"
)

const (
	LabelComplete = "COMPLETE"
	LabelDone     = "DONE"
	LabelNewQuest = "+ NEW QUEST"
	LabelStart    = "START QUEST"
	LabelCancel   = "CANCEL"

	defaultBarWidth = 30
)

// RenderHeader draws the title, level badge, progress bar, and XP total.
func RenderHeader(s engine.State, barWidth int) string {
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	bar := ProgressBar(s.Progress, engine.XPPerLevel, barWidth)
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		Muted.Render("Hero Progress ")+bar+"  ",
		LevelBadge.Render(fmt.Sprintf("LVL %d", s.Level)),
	)
	lines := []string{
		Heading(IconQuest, "Pixel Quest"),
		row,
		Gold.Render(fmt.Sprintf("%d XP TOTAL", s.XPTotal)),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// ToggleLabel is the label of a quest's toggle button.
func ToggleLabel(completed bool) string {
	if completed {
		return LabelDone
	}
	return LabelComplete
}

func toggleButton(completed bool) string {
	if completed {
		return ButtonDone.Render(LabelDone)
	}
	return ButtonComplete.Render(LabelComplete)
}

// RenderQuestCard draws one quest: title, description, XP badge, toggle button.
func RenderQuestCard(q engine.Quest, selected bool) string {
	title := H2.Render(q.Title)
	if q.Completed {
		title = Muted.Strikethrough(true).Render(q.Title)
	}
	lines := []string{title}
	if d := strings.TrimSpace(q.Description); d != "" {
		lines = append(lines, Muted.Render(d))
	}
	lines = append(lines, XPBadge.Render(fmt.Sprintf("+%d XP", q.XP))+"  "+toggleButton(q.Completed))

	style := Panel
	switch {
	case selected:
		style = SelectedPanel
	case q.Completed:
		style = DonePanel
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderQuestList draws every quest card in insertion order. selected < 0
// highlights nothing.
func RenderQuestList(quests []engine.Quest, selected int) string {
	if len(quests) == 0 {
		return Muted.Render("(no quests yet)")
	}
	cards := make([]string, 0, len(quests))
	for i := range quests {
		cards = append(cards, RenderQuestCard(quests[i], i == selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderBoard is the whole non-interactive board.
func RenderBoard(s engine.State) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHeader(s, defaultBarWidth),
		"",
		H2.Render("Active Quests"),
		RenderQuestList(s.Quests, -1),
	)
}

// ProgressBar renders value/total as a filled bar of the given width.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + Good.Render(strings.Repeat("#", filled)) + Muted.Render(strings.Repeat("-", width-filled)) + "]"
}
