package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#1DB954", "#04B575", "#FF5F57", "#FFA500", "#626262", "#7D56F4")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title  lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	help   lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style

	colors struct {
		title, ok, err, warn, help, accent lipgloss.Color
	}
}

func NewPalette(t, s, e, w, h, a string) *Palette {
	p := &Palette{
		title:  NewBold(t).MarginBottom(1),
		ok:     NewBold(s),
		err:    NewBold(e),
		warn:   NewStyle(w),
		help:   NewEm(h),
		accent: NewBold(a),
		muted:  NewStyle(h),
	}
	p.colors.title = lipgloss.Color(t)
	p.colors.ok = lipgloss.Color(s)
	p.colors.err = lipgloss.Color(e)
	p.colors.warn = lipgloss.Color(w)
	p.colors.help = lipgloss.Color(h)
	p.colors.accent = lipgloss.Color(a)
	return p
}

// severity returns the style for an alert severity.
func (p *Palette) severity(s Severity) lipgloss.Style {
	switch s {
	case SeveritySuccess:
		return p.ok
	case SeverityWarning:
		return p.warn
	case SeverityDanger:
		return p.err
	default:
		return p.accent
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
