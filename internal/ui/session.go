package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/services"
	"github.com/desertthunder/degrees/internal/shared"
)

const (
	alertMissingArtists = "Please enter both artist names."
	alertSameArtist     = "Please enter two different artists."
	progressInitial     = "Initializing search..."
)

// startSearch validates the form and posts a new search.
//
// Validation failures raise an alert and issue no request.
func (m *Model) startSearch() tea.Cmd {
	if m.disabled || m.currentSearchID != "" {
		return nil
	}

	artist1 := strings.TrimSpace(m.inputs[fieldArtist1].Value())
	artist2 := strings.TrimSpace(m.inputs[fieldArtist2].Value())
	if artist1 == "" || artist2 == "" {
		return m.failEarly(alertMissingArtists, SeverityDanger)
	}
	if shared.SameArtist(artist1, artist2) {
		return m.failEarly(alertSameArtist, SeverityWarning)
	}

	req := models.SearchRequest{Artist1: artist1, Artist2: artist2, Algorithm: m.algorithm()}
	m.request = req
	m.failure = nil

	m.hideSuggestions()
	m.hideResults()
	m.showProgress()
	m.disableForm()

	m.logger.Info("starting search", "from", req.Artist1, "to", req.Artist2, "algorithm", req.Algorithm)

	api, ctx, timeout := m.api, m.ctx, m.opts.RequestTimeout
	start := func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		started, err := api.StartSearch(ctx, req)
		return searchStartedMsg{started: started, err: err}
	}
	return tea.Batch(start, m.startBusy())
}

// failEarly raises a validation alert; in one-shot mode it also ends the program.
func (m *Model) failEarly(message string, severity Severity) tea.Cmd {
	cmd := m.showAlert(message, severity)
	if m.opts.QuitOnResult {
		m.failure = fmt.Errorf("%w: %s", shared.ErrInvalidInput, message)
		return tea.Batch(cmd, m.quit())
	}
	return cmd
}

func (m *Model) onSearchStarted(msg searchStartedMsg) tea.Cmd {
	if msg.err != nil {
		m.hideProgress()
		m.enableForm()
		return m.failSession(msg.err, "Error starting search: "+services.ServerMessage(msg.err, services.MsgStartFailed))
	}

	m.currentSearchID = msg.started.SearchID
	m.logger = shared.WithLogger(m.baseLogger, "search_id", m.currentSearchID)
	m.logger.Debug("search accepted", "status", msg.started.Status, "message", msg.started.Message)
	return m.pollSearchStatus()
}

// pollSearchStatus starts the periodic status task for the current search.
//
// The first status request is issued one interval after the start.
func (m *Model) pollSearchStatus() tea.Cmd {
	if m.currentSearchID == "" {
		return nil
	}
	tag := m.poller.start(m.currentSearchID)
	return m.after(m.opts.PollInterval, pollTickMsg{tag: tag})
}

// onPollTick reschedules the task and issues a status request unless one is still outstanding.
func (m *Model) onPollTick(msg pollTickMsg) tea.Cmd {
	if !m.poller.current(msg.tag) {
		return nil
	}

	next := m.after(m.opts.PollInterval, pollTickMsg{tag: msg.tag})
	if m.poller.inFlight {
		m.logger.Debug("status request outstanding, skipping tick")
		return next
	}
	m.poller.inFlight = true

	api, ctx, timeout, id, tag := m.api, m.ctx, m.opts.RequestTimeout, m.poller.searchID, msg.tag
	status := func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		update, err := api.Status(ctx, id)
		return statusMsg{tag: tag, update: update, err: err}
	}
	return tea.Batch(status, next)
}

// onStatus applies one status response. Responses for a stopped task are ignored.
func (m *Model) onStatus(msg statusMsg) tea.Cmd {
	if !m.poller.current(msg.tag) {
		return nil
	}
	m.poller.inFlight = false

	if msg.err != nil {
		m.poller.stop()
		m.hideProgress()
		m.enableForm()
		m.currentSearchID = ""
		return m.failSession(msg.err, "Error checking search status: "+services.ServerMessage(msg.err, services.MsgStatusFailed))
	}

	update := msg.update
	if update == nil {
		update = &models.ProgressUpdate{Status: models.StatusRunning}
	}
	m.updateProgress(update)

	switch update.Status {
	case models.StatusCompleted:
		m.poller.stop()
		return m.fetchSearchResult()
	case models.StatusFailed:
		m.poller.stop()
		m.hideProgress()
		m.enableForm()
		m.currentSearchID = ""
		reason := update.ErrorText("Unknown error")
		return m.failSession(fmt.Errorf("%w: %s", shared.ErrAPIRequest, reason), "Search failed: "+reason)
	default:
		return nil
	}
}

func (m *Model) fetchSearchResult() tea.Cmd {
	api, ctx, timeout, id := m.api, m.ctx, m.opts.RequestTimeout, m.currentSearchID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		env, err := api.Result(ctx, id)
		return resultMsg{searchID: id, env: env, err: err}
	}
}

// onResult renders the fetched result. The session is torn down on every path out of this
// method: progress hidden, form enabled, session id cleared.
func (m *Model) onResult(msg resultMsg) tea.Cmd {
	if msg.searchID == "" || msg.searchID != m.currentSearchID {
		return nil
	}
	defer m.endSession()

	if msg.err != nil {
		return m.failSession(msg.err, "Error getting search result: "+services.ServerMessage(msg.err, services.MsgResultFailed))
	}

	result := msg.env.Resolve(m.request)
	if err := result.Validate(); err != nil {
		return m.failSession(err, "Error getting search result: "+err.Error())
	}

	m.logger.Info("search finished", "found", result.Found, "degrees", result.Degrees)
	cmd := m.displayResults(result)
	if m.opts.QuitOnResult {
		return tea.Batch(cmd, m.quit())
	}
	return cmd
}

func (m *Model) endSession() {
	m.hideProgress()
	m.enableForm()
	m.currentSearchID = ""
	m.logger = m.baseLogger
}

// failSession records err and alerts with message; in one-shot mode it also ends the program.
func (m *Model) failSession(err error, message string) tea.Cmd {
	m.failure = err
	cmd := m.showAlert(message, SeverityDanger)
	if m.opts.QuitOnResult {
		return tea.Batch(cmd, m.quit())
	}
	return cmd
}

func (m *Model) showProgress() {
	m.progressVisible = true
	m.progressPct = 0
	m.progressMsg = progressInitial
}

func (m *Model) hideProgress() {
	m.progressVisible = false
}

func (m *Model) updateProgress(p *models.ProgressUpdate) {
	m.progressPct = p.Percent()
	if p.Message != "" {
		m.progressMsg = p.Message
	}
}

// displayResults fills the results panel and asks the stats collaborator to refresh.
func (m *Model) displayResults(r *models.SearchResult) tea.Cmd {
	m.result = r
	m.resultsVisible = true
	m.resultsTitle, m.resultsBody = renderResult(r)
	m.results.SetContent(m.resultsBody)
	m.results.GotoTop()

	stats, ctx, timeout := m.stats, m.ctx, m.opts.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return statsRefreshedMsg{err: stats.RefreshStats(ctx)}
	}
}

func (m *Model) hideResults() {
	m.result = nil
	m.resultsVisible = false
}

// startBusy begins the submit button spinner.
func (m *Model) startBusy() tea.Cmd {
	m.busy.tag++
	m.busy.frame = 0
	return m.after(m.busy.spinner.FPS, busyTickMsg{tag: m.busy.tag})
}

func (m *Model) onBusyTick(msg busyTickMsg) tea.Cmd {
	if !m.disabled || msg.tag != m.busy.tag {
		return nil
	}
	m.busy.frame = (m.busy.frame + 1) % len(m.busy.spinner.Frames)
	return m.after(m.busy.spinner.FPS, busyTickMsg{tag: msg.tag})
}
