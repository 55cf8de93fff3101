package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/desertthunder/degrees/internal/models"
)

// fieldID identifies an artist input.
type fieldID int

const (
	fieldArtist1 fieldID = iota
	fieldArtist2
	fieldCount

	noField fieldID = -1
)

func (f fieldID) String() string {
	switch f {
	case fieldArtist1:
		return "artist1"
	case fieldArtist2:
		return "artist2"
	default:
		return "none"
	}
}

// focusTarget is a focusable form control. The artist inputs share values with [fieldID].
type focusTarget int

const (
	focusArtist1 focusTarget = iota
	focusArtist2
	focusAlgorithm
	focusSubmit
	focusCount
)

func (t focusTarget) field() (fieldID, bool) {
	if t == focusArtist1 || t == focusArtist2 {
		return fieldID(t), true
	}
	return noField, false
}

func newArtistInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return ti
}

func (m *Model) algorithm() models.Algorithm {
	return models.Algorithms[m.algorithmIdx]
}

func (m *Model) cycleAlgorithm(delta int) {
	n := len(models.Algorithms)
	m.algorithmIdx = (m.algorithmIdx + delta + n) % n
}

// setFocus moves focus to t, reopening the target field's suggestions when it has some.
func (m *Model) setFocus(t focusTarget) {
	m.focus = t
	for f := range m.inputs {
		m.inputs[f].Blur()
	}
	if m.disabled {
		return
	}

	if f, ok := t.field(); ok {
		m.inputs[f].Focus()
		m.reshowSuggestions(f)
	}
}

func (m *Model) moveFocus(delta int) {
	n := int(focusCount)
	m.setFocus(focusTarget((int(m.focus) + delta + n) % n))
}

func (m *Model) disableForm() {
	m.disabled = true
	for f := range m.inputs {
		m.inputs[f].Blur()
	}
}

// enableForm unlocks the form and restores the input cursor without reopening suggestions.
func (m *Model) enableForm() {
	m.disabled = false
	if f, ok := m.focus.field(); ok {
		m.inputs[f].Focus()
	}
}

// Disabled reports whether the form is locked by a running search.
func (m *Model) Disabled() bool { return m.disabled }
