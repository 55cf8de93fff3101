package ui

import (
	"time"

	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/shared"
)

const (
	DefaultPollInterval   = time.Second
	DefaultDebounceDelay  = 300 * time.Millisecond
	DefaultAlertTimeout   = 5 * time.Second
	DefaultMinQueryLength = 2
	DefaultRequestTimeout = 10 * time.Second
)

// Options configures a [Model].
//
// Zero durations and lengths fall back to the Default* constants.
type Options struct {
	AutocompleteEnabled bool
	PollInterval        time.Duration
	DebounceDelay       time.Duration
	AlertTimeout        time.Duration
	MinQueryLength      int
	RequestTimeout      time.Duration

	Animations bool // keypress pulse on the artist inputs
	CursorGlow bool // pointer-following glow strip

	// Prefilled form values.
	Artist1   string
	Artist2   string
	Algorithm models.Algorithm

	AutoSubmit   bool // start a search from Init
	QuitOnResult bool // quit once a session ends
}

// OptionsFromConfig maps the [client] and [ui] tables onto [Options].
func OptionsFromConfig(cfg *shared.Config) Options {
	opts := Options{
		AutocompleteEnabled: cfg.Client.AutocompleteEnabled,
		PollInterval:        shared.Duration(cfg.Client.PollInterval, DefaultPollInterval),
		DebounceDelay:       shared.Duration(cfg.Client.Debounce, DefaultDebounceDelay),
		AlertTimeout:        shared.Duration(cfg.Client.AlertTimeout, DefaultAlertTimeout),
		MinQueryLength:      cfg.Client.MinQueryLength,
		RequestTimeout:      shared.Duration(cfg.Server.Timeout, DefaultRequestTimeout),
		Animations:          cfg.UI.Animations,
		CursorGlow:          cfg.UI.CursorGlow,
	}
	if alg, err := models.ParseAlgorithm(cfg.Client.DefaultAlgorithm); err == nil {
		opts.Algorithm = alg
	}
	return opts
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.DebounceDelay <= 0 {
		o.DebounceDelay = DefaultDebounceDelay
	}
	if o.AlertTimeout <= 0 {
		o.AlertTimeout = DefaultAlertTimeout
	}
	if o.MinQueryLength <= 0 {
		o.MinQueryLength = DefaultMinQueryLength
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = DefaultRequestTimeout
	}
	if o.Algorithm == "" {
		o.Algorithm = models.BFS
	}
	return o
}
