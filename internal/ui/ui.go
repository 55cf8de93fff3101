package ui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/services"
)

// scheduler delivers msg after d. Every timer in the model goes through it.
type scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

type busyIndicator struct {
	spinner spinner.Spinner
	frame   int
	tag     int
}

// Model is the search session controller.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	api    services.SearchAPI
	stats  services.StatsRefresher
	opts   Options
	after  scheduler

	logger     *log.Logger
	baseLogger *log.Logger

	keys keyMap
	help help.Model

	width, height int

	inputs       [fieldCount]textinput.Model
	algorithmIdx int
	focus        focusTarget
	hover        fieldID
	disabled     bool
	busy         busyIndicator

	request         models.SearchRequest
	currentSearchID string
	poller          poller
	failure         error

	progress        progress.Model
	progressVisible bool
	progressPct     float64
	progressMsg     string

	result         *models.SearchResult
	resultsVisible bool
	resultsTitle   string
	resultsBody    string
	results        viewport.Model

	suggestions [fieldCount]suggestionList
	debounce    debouncer

	alert    alert
	alertSeq int

	pulses [fieldCount]pulse
	glow   glow

	layout   layout
	quitting bool
}

// NewModel creates the controller. A nil stats falls back to [services.NoopStats]; a nil logger discards output.
func NewModel(ctx context.Context, api services.SearchAPI, stats services.StatsRefresher, logger *log.Logger, opts Options) *Model {
	if stats == nil {
		stats = services.NoopStats{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(ctx)

	m := &Model{
		ctx:        ctx,
		cancel:     cancel,
		api:        api,
		stats:      stats,
		opts:       opts,
		after:      tick,
		logger:     logger,
		baseLogger: logger,
		keys:       newKeyMap(),
		help:       help.New(),
		hover:      noField,
		busy:       busyIndicator{spinner: spinner.Dot},
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		results:    viewport.New(60, 12),
		layout:     newLayout(),
	}
	m.inputs[fieldArtist1] = newArtistInput("e.g. Drake", opts.Artist1)
	m.inputs[fieldArtist2] = newArtistInput("e.g. Kendrick Lamar", opts.Artist2)
	for i, alg := range models.Algorithms {
		if alg == opts.Algorithm {
			m.algorithmIdx = i
		}
	}
	for f := range m.suggestions {
		m.suggestions[f].highlight = -1
	}
	m.setFocus(focusArtist1)
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.opts.AutoSubmit {
		return func() tea.Msg { return submitMsg{} }
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.BlurMsg:
		m.hideGlow()
		m.hover = noField
		return m, nil

	case submitMsg:
		return m, m.startSearch()
	case searchStartedMsg:
		return m, m.onSearchStarted(msg)
	case pollTickMsg:
		return m, m.onPollTick(msg)
	case statusMsg:
		return m, m.onStatus(msg)
	case resultMsg:
		return m, m.onResult(msg)
	case statsRefreshedMsg:
		if msg.err != nil {
			m.logger.Warn("stats refresh failed", "error", msg.err)
		}
		return m, nil

	case debounceMsg:
		return m, m.onDebounce(msg)
	case suggestionsMsg:
		m.onSuggestions(msg)
		return m, nil

	case alertExpiredMsg:
		m.expireAlert(msg)
		return m, nil
	case pulseDoneMsg:
		m.endPulse(msg)
		return m, nil
	case busyTickMsg:
		return m, m.onBusyTick(msg)
	case glowFrameMsg:
		return m, m.stepGlow(msg)
	case glowFadeMsg:
		m.fadeGlow(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	inputWidth := min(max(width-12, 20), 60)
	for f := range m.inputs {
		m.inputs[f].Width = inputWidth
	}
	m.progress.Width = inputWidth
	m.results.Width = max(width-4, 20)
	m.results.Height = max(height-24, 6)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit()
	case key.Matches(msg, m.keys.dismiss):
		if f, ok := m.focus.field(); ok && m.suggestions[f].visible {
			m.suggestions[f].hide()
			return nil
		}
		m.dismissAlert()
		return nil
	case key.Matches(msg, m.keys.pageUp):
		m.results.LineUp(m.results.Height)
		return nil
	case key.Matches(msg, m.keys.pageDown):
		m.results.LineDown(m.results.Height)
		return nil
	}

	if m.disabled {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.next):
		m.moveFocus(1)
		return nil
	case key.Matches(msg, m.keys.prev):
		m.moveFocus(-1)
		return nil
	case key.Matches(msg, m.keys.submit):
		if f, ok := m.focus.field(); ok {
			list := &m.suggestions[f]
			if list.visible && list.highlight >= 0 {
				m.pickSuggestion(f, list.highlight)
				return nil
			}
		}
		return m.startSearch()
	}

	f, ok := m.focus.field()
	if !ok {
		if m.focus == focusAlgorithm {
			switch {
			case key.Matches(msg, m.keys.left):
				m.cycleAlgorithm(-1)
			case key.Matches(msg, m.keys.right):
				m.cycleAlgorithm(1)
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.up):
		m.suggestions[f].move(-1)
		return nil
	case key.Matches(msg, m.keys.down):
		m.suggestions[f].move(1)
		return nil
	}

	before := m.inputs[f].Value()
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	if m.inputs[f].Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.triggerPulse(f), m.onArtistInput(f))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionMotion {
		m.hover = m.layout.groupAt(msg.Y)
		return m.moveGlow(msg.X, msg.Y)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	for f := range m.suggestions {
		if m.layout.groupAt(msg.Y) != fieldID(f) {
			m.suggestions[f].hide()
		}
	}

	if m.disabled {
		return nil
	}

	if f, index, ok := m.layout.suggestionAt(msg.Y); ok && m.suggestions[f].visible {
		m.setFocus(focusTarget(f))
		m.pickSuggestion(f, index)
		return nil
	}
	if f := m.layout.inputAt(msg.Y); f != noField {
		m.setFocus(focusTarget(f))
		return nil
	}
	switch {
	case m.layout.algorithmRow == msg.Y:
		m.setFocus(focusAlgorithm)
		m.cycleAlgorithm(1)
	case m.layout.submitRow == msg.Y:
		m.setFocus(focusSubmit)
		return m.startSearch()
	}
	return nil
}

// quit tears the controller down: timers and in-flight requests are cancelled before the program exits.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.poller.stop()
	m.hideSuggestions()
	m.stopGlow()
	m.cancel()
	return tea.Quit
}

// Result returns the last rendered result, or nil when none was shown.
func (m *Model) Result() *models.SearchResult { return m.result }

// Err returns the error that ended the last session, if any.
func (m *Model) Err() error { return m.failure }

// SearchID returns the id of the running search, or "" when idle.
func (m *Model) SearchID() string { return m.currentSearchID }

var _ tea.Model = (*Model)(nil)
