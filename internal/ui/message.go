package ui

import (
	"github.com/desertthunder/degrees/internal/models"
)

// submitMsg asks the controller to start a search with the current form values.
type submitMsg struct{}

type searchStartedMsg struct {
	started *models.SearchStarted
	err     error
}

type pollTickMsg struct {
	tag int
}

type statusMsg struct {
	tag    int
	update *models.ProgressUpdate
	err    error
}

type resultMsg struct {
	searchID string
	env      *models.ResultEnvelope
	err      error
}

type statsRefreshedMsg struct {
	err error
}

type debounceMsg struct {
	field fieldID
	tag   int
	query string
}

type suggestionsMsg struct {
	field   fieldID
	gen     int
	query   string
	artists []models.Artist
	err     error
}

type alertExpiredMsg struct {
	id int
}

type pulseDoneMsg struct {
	field fieldID
	tag   int
}

type busyTickMsg struct {
	tag int
}

type glowFrameMsg struct {
	tag int
}

type glowFadeMsg struct {
	seq int
}
