// package services defines interface SearchAPI for the degrees-of-separation backend
package services

import (
	"context"

	"github.com/desertthunder/degrees/internal/models"
)

// SearchAPI is the contract the session controller consumes.
type SearchAPI interface {
	// StartSearch posts a new search and returns the server-issued session id.
	StartSearch(ctx context.Context, req models.SearchRequest) (*models.SearchStarted, error)

	// Status reports progress of the search with the given id.
	Status(ctx context.Context, searchID string) (*models.ProgressUpdate, error)

	// Result fetches the final result of a completed search.
	Result(ctx context.Context, searchID string) (*models.ResultEnvelope, error)

	// SearchArtists returns autocomplete suggestions for a name prefix.
	SearchArtists(ctx context.Context, query string) ([]models.Artist, error)
}

// StatsRefresher refreshes an auxiliary database-statistics display after a result is rendered.
type StatsRefresher interface {
	RefreshStats(ctx context.Context) error
}

// NoopStats is the default [StatsRefresher]; the statistics panel is not part of the client.
type NoopStats struct{}

func (NoopStats) RefreshStats(context.Context) error { return nil }
