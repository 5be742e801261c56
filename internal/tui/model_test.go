package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelquest/internal/engine"
	"pixelquest/internal/storage"
)

func newTestModel(t *testing.T) (boardModel, *engine.Board) {
	t.Helper()
	b := engine.NewBoard(storage.NewMemoryStore())
	require.NoError(t, b.Initialize(context.Background()))
	return newBoardModel(context.Background(), b), b
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m boardModel, msgs ...tea.Msg) boardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(boardModel)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m boardModel, s string) boardModel {
	t.Helper()
	for _, r := range s {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModalStartsClosed(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, modalClosed, m.modal)
	assert.Contains(t, m.View(), "+ NEW QUEST")
	assert.Contains(t, m.View(), "Start Your Journey")
}

func TestToggleSelectedQuest(t *testing.T) {
	m, b := newTestModel(t)

	m = send(t, m, key(" "))
	assert.Equal(t, 120, b.XPTotal())
	assert.Equal(t, 120, m.state.XPTotal)
	assert.Contains(t, m.View(), "LVL 2")

	m = send(t, m, key("down"), key("c"))
	assert.Equal(t, 100, m.state.XPTotal)
	assert.Equal(t, 0, m.state.Progress)
	assert.Contains(t, m.lastLog, "Reopened")
}

func TestSubmitAddsQuestAndCloses(t *testing.T) {
	m, b := newTestModel(t)

	m = send(t, m, key("n"))
	require.Equal(t, modalOpen, m.modal)
	assert.Contains(t, m.View(), "START QUEST")
	assert.Contains(t, m.View(), "CANCEL")

	m = typeText(t, m, "Test")
	m = send(t, m, key("tab"))
	m = typeText(t, m, "a test quest")
	m = send(t, m, key("tab"))
	m.form.inputs[fieldXP].SetValue("30")
	m = send(t, m, key("enter"))

	assert.Equal(t, modalClosed, m.modal)
	quests := b.Snapshot().Quests
	require.Len(t, quests, 3)
	assert.Equal(t, "Test", quests[2].Title)
	assert.Equal(t, "a test quest", quests[2].Description)
	assert.Equal(t, 30, quests[2].XP)
	assert.False(t, quests[2].Completed)
	assert.Equal(t, 70, b.XPTotal())
	assert.Equal(t, 2, m.selected)
}

func TestCancelAddsNothing(t *testing.T) {
	m, b := newTestModel(t)

	m = send(t, m, key("n"))
	m = typeText(t, m, "Abandoned")
	m = send(t, m, key("esc"))

	assert.Equal(t, modalClosed, m.modal)
	assert.Len(t, b.Snapshot().Quests, 2)

	// The form is fresh when reopened.
	m = send(t, m, key("n"))
	assert.Equal(t, "", m.form.inputs[fieldTitle].Value())
}

func TestInvalidSubmissionKeepsModalOpen(t *testing.T) {
	m, b := newTestModel(t)

	m = send(t, m, key("n"), key("enter"))
	assert.Equal(t, modalOpen, m.modal)
	assert.Contains(t, m.form.err, "title")

	m = typeText(t, m, "Bad XP")
	m.form.inputs[fieldXP].SetValue("lots")
	m = send(t, m, key("enter"))
	assert.Equal(t, modalOpen, m.modal)
	assert.Contains(t, m.form.err, "xp")
	assert.Contains(t, m.View(), "xp")

	assert.Len(t, b.Snapshot().Quests, 2)
}

type failingStore struct {
	*storage.MemoryStore
	fail bool
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func TestSubmitStoreFailureKeepsInput(t *testing.T) {
	store := &failingStore{MemoryStore: storage.NewMemoryStore()}
	b := engine.NewBoard(store)
	require.NoError(t, b.Initialize(context.Background()))
	m := newBoardModel(context.Background(), b)

	m = send(t, m, key("n"))
	m = typeText(t, m, "Read a book")
	store.fail = true
	m = send(t, m, key("enter"))

	assert.Equal(t, modalOpen, m.modal)
	assert.Equal(t, "Read a book", m.form.inputs[fieldTitle].Value())
	assert.Contains(t, m.form.err, "retry")
	require.Error(t, m.err)
	assert.Len(t, b.Snapshot().Quests, 2)

	store.fail = false
	m = send(t, m, key("enter"))
	assert.Equal(t, modalClosed, m.modal)
	assert.NoError(t, m.err)
	assert.Len(t, b.Snapshot().Quests, 3)
}

func TestBlankXPUsesDefault(t *testing.T) {
	m, b := newTestModel(t)

	m = send(t, m, key("n"))
	m = typeText(t, m, "Defaulted")
	m.form.inputs[fieldXP].SetValue("")
	m = send(t, m, key("enter"))

	quests := b.Snapshot().Quests
	require.Len(t, quests, 3)
	assert.Equal(t, engine.DefaultQuestXP, quests[2].XP)
}

func TestListKeysIgnoredWhileModalOpen(t *testing.T) {
	m, b := newTestModel(t)

	m = send(t, m, key("n"), key("q"), key("c"))
	assert.Equal(t, modalOpen, m.modal)
	assert.Equal(t, "qc", m.form.inputs[fieldTitle].Value())
	assert.Equal(t, 70, b.XPTotal())
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
