package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/shared"
	tu "github.com/desertthunder/degrees/internal/testing"
)

func TestSearchClient(t *testing.T) {
	ctx := context.Background()

	t.Run("StartSearch", func(t *testing.T) {
		t.Run("returns search id", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			started, err := client.StartSearch(ctx, models.SearchRequest{Artist1: "Drake", Artist2: "Adele", Algorithm: models.BFS})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if started.SearchID != "abc" {
				t.Errorf("expected search id abc, got %s", started.SearchID)
			}

			reqs := backend.Requests()
			if len(reqs) != 1 || reqs[0].Method != http.MethodPost || reqs[0].Path != "/api/search" {
				t.Fatalf("unexpected requests: %+v", reqs)
			}

			var body models.SearchRequest
			if err := json.Unmarshal(reqs[0].Body, &body); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if body.Artist1 != "Drake" || body.Artist2 != "Adele" || body.Algorithm != models.BFS {
				t.Errorf("unexpected body: %+v", body)
			}
			if reqs[0].RequestID == "" {
				t.Error("expected request id header")
			}
		})

		t.Run("surfaces server error", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			backend.StartStatus = http.StatusBadRequest
			backend.StartError = `Algorithm must be "bfs" or "dfs"`
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			_, err := client.StartSearch(ctx, models.SearchRequest{Artist1: "a", Artist2: "b", Algorithm: "x"})
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Fatalf("expected ErrAPIRequest, got %v", err)
			}
			if got := ServerMessage(err, MsgStartFailed); got != backend.StartError {
				t.Errorf("expected server message, got %q", got)
			}
		})

		t.Run("falls back without server text", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			backend.StartStatus = http.StatusInternalServerError
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			_, err := client.StartSearch(ctx, models.SearchRequest{Artist1: "a", Artist2: "b"})
			if got := ServerMessage(err, MsgStartFailed); got != MsgStartFailed {
				t.Errorf("expected fallback message, got %q", got)
			}
		})

		t.Run("rejects missing search id", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			backend.SearchID = ""
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			_, err := client.StartSearch(ctx, models.SearchRequest{Artist1: "a", Artist2: "b"})
			if !errors.Is(err, shared.ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	})

	t.Run("Status", func(t *testing.T) {
		t.Run("decodes progress", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			backend.Statuses = []models.ProgressUpdate{
				{Status: models.StatusRunning, Progress: 10, Message: "Searching for artists..."},
				{Status: models.StatusFailed, Progress: 10, Error: tu.StrPtr("no data")},
			}
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			first, err := client.Status(ctx, "abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if first.Status != models.StatusRunning || first.Progress != 10 {
				t.Errorf("unexpected first update: %+v", first)
			}

			second, err := client.Status(ctx, "abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if second.Status != models.StatusFailed || second.ErrorText("") != "no data" {
				t.Errorf("unexpected second update: %+v", second)
			}

			reqs := backend.Requests()
			if reqs[0].Path != "/api/search/abc/status" {
				t.Errorf("unexpected path %s", reqs[0].Path)
			}
		})

		t.Run("unknown search", func(t *testing.T) {
			_, srv := tu.NewBackend(t)
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			_, err := client.Status(ctx, "missing")
			if !errors.Is(err, shared.ErrSearchNotFound) {
				t.Errorf("expected ErrSearchNotFound, got %v", err)
			}
			if got := ServerMessage(err, MsgStatusFailed); got != "Search not found" {
				t.Errorf("expected server message, got %q", got)
			}
		})

		t.Run("requires id", func(t *testing.T) {
			client := NewSearchClient(nil)
			if _, err := client.Status(ctx, ""); !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})

		t.Run("undecodable body", func(t *testing.T) {
			client := NewSearchClient(NewAPIService("http://example.com", &http.Client{
				Transport: tu.NewMockRoundTripper(&http.Response{
					StatusCode: http.StatusOK,
					Body:       http.NoBody,
					Header:     http.Header{},
				}, nil),
			}))

			_, err := client.Status(ctx, "abc")
			if !errors.Is(err, shared.ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	})

	t.Run("Result", func(t *testing.T) {
		t.Run("decodes found result", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			backend.Result = &models.ResultEnvelope{
				SearchID: "abc",
				Status:   models.StatusCompleted,
				Result: &models.SearchResult{
					Found: true, Degrees: 2, StartArtist: "A", EndArtist: "C", Algorithm: "BFS",
					ArtistsSearched: 42, PathNames: []string{"A", "B", "C"},
				},
			}
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			env, err := client.Result(ctx, "abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if env.Result == nil || env.Result.Degrees != 2 || len(env.Result.PathNames) != 3 {
				t.Errorf("unexpected result: %+v", env.Result)
			}
		})

		t.Run("null result", func(t *testing.T) {
			_, srv := tu.NewBackend(t)
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			env, err := client.Result(ctx, "abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if env.Result != nil {
				t.Errorf("expected nil result, got %+v", env.Result)
			}
		})

		t.Run("not completed", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			backend.ResultStatus = http.StatusBadRequest
			backend.ResultError = "Search not completed yet"
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			_, err := client.Result(ctx, "abc")
			if got := ServerMessage(err, MsgResultFailed); got != "Search not completed yet" {
				t.Errorf("expected server message, got %q", got)
			}
		})
	})

	t.Run("SearchArtists", func(t *testing.T) {
		t.Run("returns artists", func(t *testing.T) {
			backend, srv := tu.NewBackend(t)
			backend.Artists = map[string][]models.Artist{
				"dra ke": {{Name: "Drake", Followers: 1000}},
			}
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			artists, err := client.SearchArtists(ctx, "dra ke")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(artists) != 1 || artists[0].Name != "Drake" {
				t.Errorf("unexpected artists: %+v", artists)
			}

			reqs := backend.Requests()
			if reqs[0].Query != "q=dra+ke" {
				t.Errorf("expected escaped query, got %s", reqs[0].Query)
			}
		})

		t.Run("empty list", func(t *testing.T) {
			_, srv := tu.NewBackend(t)
			client := NewSearchClient(NewAPIService(srv.URL, nil))

			artists, err := client.SearchArtists(ctx, "zz")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(artists) != 0 {
				t.Errorf("expected no artists, got %+v", artists)
			}
		})

		t.Run("requires query", func(t *testing.T) {
			client := NewSearchClient(nil)
			if _, err := client.SearchArtists(ctx, "  "); !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})
	})
}

func TestServerMessage(t *testing.T) {
	if got := ServerMessage(nil, "x"); got != "" {
		t.Errorf("expected empty string for nil, got %q", got)
	}
	if got := ServerMessage(errors.New("dial tcp: refused"), "x"); got != "dial tcp: refused" {
		t.Errorf("expected raw error text, got %q", got)
	}
	if got := ServerMessage(&APIError{StatusCode: 500}, "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestNoopStats(t *testing.T) {
	var s StatsRefresher = NoopStats{}
	if err := s.RefreshStats(context.Background()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
