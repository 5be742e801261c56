package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pixelquest/internal/engine"
)

type modalState int

const (
	modalClosed modalState = iota
	modalOpen
)

func (s modalState) String() string {
	if s == modalOpen {
		return "open"
	}
	return "closed"
}

const (
	fieldTitle = iota
	fieldDescription
	fieldXP
	fieldCount
)

// questForm is the "new quest" modal body.
type questForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newQuestForm() questForm {
	var f questForm

	f.inputs[fieldTitle] = textinput.New()
	f.inputs[fieldTitle].Placeholder = "Quest title (required)"
	f.inputs[fieldTitle].CharLimit = 120

	f.inputs[fieldDescription] = textinput.New()
	f.inputs[fieldDescription].Placeholder = "Description"
	f.inputs[fieldDescription].CharLimit = 400

	f.inputs[fieldXP] = textinput.New()
	f.inputs[fieldXP].Placeholder = strconv.Itoa(engine.DefaultQuestXP)
	f.inputs[fieldXP].CharLimit = 6
	f.inputs[fieldXP].SetValue(strconv.Itoa(engine.DefaultQuestXP))

	f.setFocus(fieldTitle)
	return f
}

func (f *questForm) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for n := range f.inputs {
		if n == f.focus {
			f.inputs[n].Focus()
		} else {
			f.inputs[n].Blur()
		}
	}
}

func (f *questForm) next() { f.setFocus(f.focus + 1) }
func (f *questForm) prev() { f.setFocus(f.focus - 1) }

// input builds the Add request. Nothing is created when this fails.
func (f questForm) input() (engine.AddQuestInput, error) {
	xp, err := engine.ParseXP(f.inputs[fieldXP].Value())
	if err != nil {
		return engine.AddQuestInput{}, err
	}
	return engine.AddQuestInput{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
		XP:          xp,
	}, nil
}

func (f questForm) update(msg tea.Msg) (questForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}
