// package models defines the data model for the search API client
package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/degrees/internal/shared"
)

// Algorithm selects the server-side graph traversal.
type Algorithm string

const (
	BFS Algorithm = "bfs"
	DFS Algorithm = "dfs"
)

// Algorithms lists the selectable traversals in display order.
var Algorithms = []Algorithm{BFS, DFS}

// ParseAlgorithm accepts bfs/dfs in any case. An empty string yields [BFS].
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return "", fmt.Errorf("%w: algorithm must be bfs or dfs, got %q", shared.ErrInvalidArgument, s)
	}
}

func (a Algorithm) String() string { return string(a) }

// Label is the upper-case form used in result panels.
func (a Algorithm) Label() string { return strings.ToUpper(string(a)) }

// Status is the lifecycle state reported by the status endpoint.
type Status string

const (
	StatusStarting  Status = "starting"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether polling should stop.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Artist1   string    `json:"artist1"`
	Artist2   string    `json:"artist2"`
	Algorithm Algorithm `json:"algorithm"`
}

// SearchStarted is the 2xx answer to POST /api/search.
type SearchStarted struct {
	SearchID string `json:"search_id"`
	Status   string `json:"status,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ProgressUpdate is the body of GET /api/search/{id}/status.
type ProgressUpdate struct {
	SearchID  string  `json:"search_id,omitempty"`
	Status    Status  `json:"status"`
	Progress  float64 `json:"progress"`
	Message   string  `json:"message"`
	Error     *string `json:"error,omitempty"`
	StartedAt string  `json:"started_at,omitempty"`
	Artist1   string  `json:"artist1,omitempty"`
	Artist2   string  `json:"artist2,omitempty"`
	Algorithm string  `json:"algorithm,omitempty"`
}

// ErrorText returns the server error or fallback when none was reported.
func (p ProgressUpdate) ErrorText(fallback string) string {
	if p.Error == nil || strings.TrimSpace(*p.Error) == "" {
		return fallback
	}
	return *p.Error
}

// Percent clamps Progress into [0, 100].
func (p ProgressUpdate) Percent() float64 {
	switch {
	case p.Progress < 0:
		return 0
	case p.Progress > 100:
		return 100
	default:
		return p.Progress
	}
}

// SearchResult is the outcome of a completed search.
type SearchResult struct {
	Found           bool     `json:"found"`
	Degrees         int      `json:"degrees"`
	StartArtist     string   `json:"start_artist"`
	EndArtist       string   `json:"end_artist"`
	Algorithm       string   `json:"algorithm"`
	ArtistsSearched int      `json:"artists_searched"`
	PathNames       []string `json:"path_names"`
	PathURLs        []string `json:"path_urls,omitempty"`
	Message         string   `json:"message,omitempty"`
}

// Validate checks the path invariant of a found result.
func (r *SearchResult) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: result is nil", shared.ErrInvalidResult)
	}
	if !r.Found {
		return nil
	}
	if r.Degrees < 0 {
		return fmt.Errorf("%w: negative degrees %d", shared.ErrInvalidResult, r.Degrees)
	}
	if len(r.PathNames) != r.Degrees+1 {
		return fmt.Errorf("%w: %d degrees needs %d path entries, got %d",
			shared.ErrInvalidResult, r.Degrees, r.Degrees+1, len(r.PathNames))
	}
	return nil
}

// ResultEnvelope is the body of GET /api/search/{id}/result.
type ResultEnvelope struct {
	SearchID    string        `json:"search_id,omitempty"`
	Status      Status        `json:"status,omitempty"`
	Result      *SearchResult `json:"result"`
	StartedAt   string        `json:"started_at,omitempty"`
	CompletedAt string        `json:"completed_at,omitempty"`
	Artist1     string        `json:"artist1,omitempty"`
	Artist2     string        `json:"artist2,omitempty"`
	Algorithm   string        `json:"algorithm,omitempty"`
}

// Resolve returns the envelope's result, substituting a not-found result for the submitted
// request when the server reported none. Names missing from the result are filled from req.
func (e *ResultEnvelope) Resolve(req SearchRequest) *SearchResult {
	var r SearchResult
	if e != nil && e.Result != nil {
		r = *e.Result
	}

	if r.StartArtist == "" {
		r.StartArtist = firstNonEmpty(req.Artist1, envelopeField(e, func(e *ResultEnvelope) string { return e.Artist1 }))
	}
	if r.EndArtist == "" {
		r.EndArtist = firstNonEmpty(req.Artist2, envelopeField(e, func(e *ResultEnvelope) string { return e.Artist2 }))
	}
	if r.Algorithm == "" {
		alg := firstNonEmpty(string(req.Algorithm), envelopeField(e, func(e *ResultEnvelope) string { return e.Algorithm }))
		r.Algorithm = strings.ToUpper(alg)
	}
	return &r
}

func envelopeField(e *ResultEnvelope, get func(*ResultEnvelope) string) string {
	if e == nil {
		return ""
	}
	return get(e)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Artist is one autocomplete suggestion.
type Artist struct {
	Name       string   `json:"name"`
	URL        string   `json:"url,omitempty"`
	ID         string   `json:"id,omitempty"`
	Popularity int      `json:"popularity,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Followers  int      `json:"followers"`
	Image      *string  `json:"image,omitempty"`
}

// HasImage reports whether the suggestion carries an image URL.
func (a Artist) HasImage() bool {
	return a.Image != nil && *a.Image != ""
}

// ArtistList is the body of GET /api/artists/search.
type ArtistList struct {
	Artists []Artist `json:"artists"`
}

// ErrorBody is the shape of every non-2xx answer.
type ErrorBody struct {
	Error string `json:"error"`
}
