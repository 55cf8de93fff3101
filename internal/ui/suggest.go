package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/shared"
)

// debouncer holds one pending lookup timer per artist field.
type debouncer struct {
	tags    [fieldCount]int
	pending [fieldCount]bool
}

func (d *debouncer) cancel(f fieldID) {
	d.tags[f]++
	d.pending[f] = false
}

// arm replaces any pending timer for f and returns the new timer's tag.
func (d *debouncer) arm(f fieldID) int {
	d.cancel(f)
	d.pending[f] = true
	return d.tags[f]
}

// fire reports whether msg belongs to the field's pending timer, consuming it.
func (d *debouncer) fire(msg debounceMsg) bool {
	if !d.pending[msg.field] || d.tags[msg.field] != msg.tag {
		return false
	}
	d.pending[msg.field] = false
	return true
}

// suggestionList is the artist dropdown rendered under an input.
type suggestionList struct {
	artists   []models.Artist
	visible   bool
	highlight int
	// gen invalidates lookups issued before the list was last closed by the controller.
	gen int
}

func (s *suggestionList) hide() {
	s.visible = false
	s.highlight = -1
}

func (s *suggestionList) move(delta int) {
	if !s.visible || len(s.artists) == 0 {
		return
	}
	s.highlight += delta
	if s.highlight < 0 {
		s.highlight = len(s.artists) - 1
	} else if s.highlight >= len(s.artists) {
		s.highlight = 0
	}
}

// suggestionItem is one row of the dropdown.
type suggestionItem struct {
	artist models.Artist
}

func (i suggestionItem) Title() string { return i.artist.Name }

func (i suggestionItem) Description() string {
	followers := shared.FormatFollowers(i.artist.Followers)
	desc := fmt.Sprintf("%s %s", followers, shared.Plural(i.artist.Followers, "follower", "followers"))
	if len(i.artist.Genres) > 0 {
		desc += " · " + strings.Join(i.artist.Genres, ", ")
	}
	return desc
}

func (i suggestionItem) marker() string {
	if i.artist.HasImage() {
		return "◆"
	}
	return "◇"
}

// onArtistInput reacts to a changed artist value by rescheduling that field's lookup.
func (m *Model) onArtistInput(f fieldID) tea.Cmd {
	if !m.opts.AutocompleteEnabled {
		return nil
	}

	m.debounce.cancel(f)
	query := strings.TrimSpace(m.inputs[f].Value())
	if len([]rune(query)) < m.opts.MinQueryLength {
		m.suggestions[f].hide()
		return nil
	}

	tag := m.debounce.arm(f)
	return m.after(m.opts.DebounceDelay, debounceMsg{field: f, tag: tag, query: query})
}

func (m *Model) onDebounce(msg debounceMsg) tea.Cmd {
	if !m.opts.AutocompleteEnabled || !m.debounce.fire(msg) {
		return nil
	}
	return m.fetchSuggestions(msg.field, msg.query)
}

func (m *Model) fetchSuggestions(f fieldID, query string) tea.Cmd {
	api, parent, timeout := m.api, m.ctx, m.opts.RequestTimeout
	gen := m.suggestions[f].gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		artists, err := api.SearchArtists(ctx, query)
		return suggestionsMsg{field: f, gen: gen, query: query, artists: artists, err: err}
	}
}

// onSuggestions shows fetched suggestions unless the field has moved on to another query
// or the lists were closed for a search after the lookup went out.
func (m *Model) onSuggestions(msg suggestionsMsg) {
	if !m.opts.AutocompleteEnabled {
		return
	}
	if m.disabled || msg.gen != m.suggestions[msg.field].gen {
		m.logger.Debug("dropping suggestions for a closed list", "field", msg.field, "query", msg.query)
		return
	}
	if strings.TrimSpace(m.inputs[msg.field].Value()) != msg.query {
		m.logger.Debug("dropping stale suggestions", "field", msg.field, "query", msg.query)
		return
	}

	list := &m.suggestions[msg.field]
	if msg.err != nil {
		m.logger.Warn("artist lookup failed", "query", msg.query, "error", msg.err)
		list.hide()
		return
	}

	list.artists = msg.artists
	list.highlight = -1
	list.visible = len(msg.artists) > 0
}

// pickSuggestion fills the field with the chosen artist name and closes its list.
func (m *Model) pickSuggestion(f fieldID, index int) {
	list := &m.suggestions[f]
	if index < 0 || index >= len(list.artists) {
		return
	}

	m.inputs[f].SetValue(list.artists[index].Name)
	m.inputs[f].CursorEnd()
	m.debounce.cancel(f)
	list.hide()
}

// reshowSuggestions reopens an existing list when its field regains focus with a long enough value.
func (m *Model) reshowSuggestions(f fieldID) {
	if !m.opts.AutocompleteEnabled {
		return
	}
	list := &m.suggestions[f]
	query := strings.TrimSpace(m.inputs[f].Value())
	if len([]rune(query)) >= m.opts.MinQueryLength && len(list.artists) > 0 {
		list.visible = true
	}
}

func (m *Model) hideSuggestions() {
	for f := range m.suggestions {
		m.debounce.cancel(fieldID(f))
		m.suggestions[f].hide()
		m.suggestions[f].gen++
	}
}
