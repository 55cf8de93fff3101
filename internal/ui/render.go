package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/degrees/internal/formatter"
	"github.com/desertthunder/degrees/internal/models"
)

const (
	titleFound    = "✓ Connection Found!"
	titleNotFound = "✗ No Connection Found"
	labelSubmit   = "Find Connection"
	labelBusy     = "Searching..."
)

// span is an inclusive range of view rows; an unset span has first > last.
type span struct{ first, last int }

func (s span) contains(y int) bool { return y >= s.first && y <= s.last }

var noSpan = span{first: 0, last: -1}

// layout records where the interactive rows landed in the last rendered view.
type layout struct {
	groups       [fieldCount]span
	inputs       [fieldCount]span
	suggestions  [fieldCount]span
	algorithmRow int
	submitRow    int
}

func newLayout() layout {
	l := layout{algorithmRow: -1, submitRow: -1}
	for f := range l.groups {
		l.groups[f], l.inputs[f], l.suggestions[f] = noSpan, noSpan, noSpan
	}
	return l
}

func (l layout) groupAt(y int) fieldID {
	for f, s := range l.groups {
		if s.contains(y) {
			return fieldID(f)
		}
	}
	return noField
}

func (l layout) inputAt(y int) fieldID {
	for f, s := range l.inputs {
		if s.contains(y) {
			return fieldID(f)
		}
	}
	return noField
}

func (l layout) suggestionAt(y int) (fieldID, int, bool) {
	for f, s := range l.suggestions {
		if s.contains(y) {
			return fieldID(f), y - s.first, true
		}
	}
	return noField, 0, false
}

// canvas accumulates view lines so callers can record where each block starts.
type canvas struct {
	lines []string
}

func (c *canvas) add(block string) span {
	first := len(c.lines)
	c.lines = append(c.lines, strings.Split(block, "\n")...)
	return span{first: first, last: len(c.lines) - 1}
}

func (m *Model) View() string {
	var c canvas
	m.layout = newLayout()

	if m.opts.CursorGlow {
		c.add(styles.accent.Render(m.glow.strip(max(m.width-1, 0))))
	}

	c.add(styles.title.Render("Degrees of Separation"))
	c.add(styles.help.Render("Find how many collaborations connect two artists."))
	c.add("")

	if m.alert.visible {
		c.add(m.renderAlert())
		c.add("")
	}

	m.renderGroup(&c, fieldArtist1, "Artist 1")
	m.renderGroup(&c, fieldArtist2, "Artist 2")

	m.layout.algorithmRow = c.add(m.renderAlgorithm()).first
	c.add("")
	m.layout.submitRow = c.add(m.renderSubmit()).first

	if m.progressVisible {
		c.add("")
		c.add(m.renderProgress())
	}

	if m.resultsVisible && m.result != nil {
		c.add("")
		c.add(m.renderResults())
	}

	c.add("")
	c.add(m.help.View(m.keys))

	if !m.opts.CursorGlow {
		return strings.Join(c.lines, "\n")
	}

	row := m.glow.row()
	var b strings.Builder
	for i, line := range c.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == row && i > 0 {
			b.WriteString(styles.accent.Render("▌"))
		} else {
			b.WriteString(" ")
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m *Model) renderAlert() string {
	style := styles.severity(m.alert.severity).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(severityColor(m.alert.severity)).
		PaddingLeft(1)
	return style.Render(m.alert.message + "  " + styles.help.Render("(esc to dismiss)"))
}

func severityColor(s Severity) lipgloss.Color {
	switch s {
	case SeveritySuccess:
		return styles.colors.ok
	case SeverityWarning:
		return styles.colors.warn
	case SeverityDanger:
		return styles.colors.err
	default:
		return styles.colors.accent
	}
}

// renderGroup draws an input with its label and suggestion list and records their rows.
func (m *Model) renderGroup(c *canvas, f fieldID, label string) {
	labelSpan := c.add(styles.accent.Render(label))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(f)).
		Padding(0, 1).
		Render(m.inputs[f].View())
	inputSpan := c.add(box)
	m.layout.inputs[f] = inputSpan

	last := inputSpan.last
	if list := m.suggestions[f]; list.visible && len(list.artists) > 0 {
		rows := make([]string, 0, len(list.artists))
		for i, artist := range list.artists {
			rows = append(rows, renderSuggestion(suggestionItem{artist: artist}, i == list.highlight))
		}
		s := c.add(strings.Join(rows, "\n"))
		m.layout.suggestions[f] = s
		last = s.last
	}

	m.layout.groups[f] = span{first: labelSpan.first, last: last}
}

func renderSuggestion(item suggestionItem, highlighted bool) string {
	line := fmt.Sprintf(" %s %s  %s", item.marker(), item.Title(), styles.help.Render(item.Description()))
	if highlighted {
		return styles.ok.Render("›") + line
	}
	return " " + line
}

// borderColor reflects focus, hover and the keypress pulse.
func (m *Model) borderColor(f fieldID) lipgloss.Color {
	if p := m.pulses[f]; p.active {
		if p.variant == pulseFromHover {
			return styles.colors.warn
		}
		return styles.colors.ok
	}
	switch {
	case m.disabled:
		return lipgloss.Color("#3C3C3C")
	case m.focus == focusTarget(f):
		return styles.colors.accent
	case m.hover == f:
		return styles.colors.title
	default:
		return styles.colors.help
	}
}

func (m *Model) renderAlgorithm() string {
	var b strings.Builder
	if m.focus == focusAlgorithm && !m.disabled {
		b.WriteString(styles.accent.Render("› "))
	} else {
		b.WriteString("  ")
	}
	b.WriteString("Algorithm  ")
	for i, alg := range models.Algorithms {
		mark := "( )"
		if i == m.algorithmIdx {
			mark = "(•)"
		}
		b.WriteString(fmt.Sprintf("%s %s  ", mark, alg.Label()))
	}
	return b.String()
}

// renderSubmit draws the submit button, which shows a spinner while the form is locked.
func (m *Model) renderSubmit() string {
	label := labelSubmit
	if m.disabled {
		label = m.busy.spinner.Frames[m.busy.frame%len(m.busy.spinner.Frames)] + " " + labelBusy
	}

	style := lipgloss.NewStyle().Padding(0, 2).Background(styles.colors.help)
	if m.focus == focusSubmit && !m.disabled {
		style = style.Background(styles.colors.accent).Bold(true)
	}
	return "  " + style.Render(label)
}

func (m *Model) renderProgress() string {
	bar := m.progress.ViewAs(m.progressPct / 100)
	return fmt.Sprintf("  %s\n  %s", bar, styles.help.Render(m.progressMsg))
}

func (m *Model) renderResults() string {
	title := styles.ok.Render(m.resultsTitle)
	if !m.result.Found {
		title = styles.warn.Bold(true).Render(m.resultsTitle)
	}
	return "  " + title + "\n" + m.results.View()
}

// renderResult builds the results panel title and body for r.
func renderResult(r *models.SearchResult) (string, string) {
	var b strings.Builder

	if !r.Found {
		b.WriteString(styles.warn.Render("No Path Found") + "\n")
		b.WriteString(formatter.NotFoundSummary(r) + "\n")
		b.WriteString(formatter.Stats(r) + "\n\n")
		b.WriteString(styles.help.Render(formatter.NotFoundTip))
		return titleNotFound, b.String()
	}

	b.WriteString(styles.ok.Render("Path Found") + "\n")
	b.WriteString(formatter.Summary(r) + "\n")
	b.WriteString(formatter.Stats(r) + "\n\n")
	b.WriteString(styles.accent.Render("Connection Path:") + "\n")

	steps := formatter.Path(r)
	for i, step := range steps {
		line := fmt.Sprintf("%3d  %s", step.Position, step.Name)
		if step.URL != "" {
			line += "  " + styles.help.Render(step.URL)
		}
		b.WriteString(line)
		if i < len(steps)-1 {
			b.WriteString("\n     " + styles.muted.Render(formatter.Connector) + "\n")
		}
	}
	return titleFound, b.String()
}
