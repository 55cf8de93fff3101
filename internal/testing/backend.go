package testing

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/desertthunder/degrees/internal/models"
	"github.com/go-chi/chi/v5"
)

// RecordedRequest is one request seen by [Backend].
type RecordedRequest struct {
	Method    string
	Path      string
	Query     string
	RequestID string
	Body      []byte
}

// Backend is a scripted stand-in for the search API, served over [httptest.Server].
//
// Fields may be changed between requests; access is serialized.
type Backend struct {
	SearchID    string
	StartStatus int
	StartError  string

	Statuses     []models.ProgressUpdate
	StatusStatus int
	StatusError  string

	Result       *models.ResultEnvelope
	ResultStatus int
	ResultError  string

	Artists map[string][]models.Artist

	mu          sync.Mutex
	requests    []RecordedRequest
	statusCalls int
}

// NewBackend starts a [Backend] that is closed when the test ends.
func NewBackend(t *testing.T) (*Backend, *httptest.Server) {
	t.Helper()

	b := &Backend{SearchID: "abc"}
	srv := httptest.NewServer(b.Router())
	t.Cleanup(srv.Close)
	return b, srv
}

// Router returns the chi router serving the four API endpoints.
func (b *Backend) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)
	r.Post("/api/search", b.startSearch)
	r.Get("/api/search/{id}/status", b.status)
	r.Get("/api/search/{id}/result", b.result)
	r.Get("/api/artists/search", b.searchArtists)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.ErrorBody{Error: "Not found"})
	})
	return r
}

// Requests returns every request seen so far.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			RequestID: r.Header.Get("X-Request-ID"),
			Body:      body,
		})
		b.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) startSearch(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.StartStatus >= 300 {
		writeJSON(w, b.StartStatus, models.ErrorBody{Error: b.StartError})
		return
	}

	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody{Error: "No JSON data provided"})
		return
	}

	writeJSON(w, http.StatusAccepted, models.SearchStarted{
		SearchID: b.SearchID,
		Status:   "started",
		Message:  "Search initiated successfully",
	})
}

func (b *Backend) status(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if chi.URLParam(r, "id") != b.SearchID {
		writeJSON(w, http.StatusNotFound, models.ErrorBody{Error: "Search not found"})
		return
	}
	if b.StatusStatus >= 300 {
		writeJSON(w, b.StatusStatus, models.ErrorBody{Error: b.StatusError})
		return
	}

	b.statusCalls++
	update := models.ProgressUpdate{Status: models.StatusRunning}
	if n := len(b.Statuses); n > 0 {
		i := b.statusCalls - 1
		if i >= n {
			i = n - 1
		}
		update = b.Statuses[i]
	}
	update.SearchID = b.SearchID
	writeJSON(w, http.StatusOK, update)
}

func (b *Backend) result(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if chi.URLParam(r, "id") != b.SearchID {
		writeJSON(w, http.StatusNotFound, models.ErrorBody{Error: "Search not found"})
		return
	}
	if b.ResultStatus >= 300 {
		writeJSON(w, b.ResultStatus, models.ErrorBody{Error: b.ResultError})
		return
	}

	env := models.ResultEnvelope{SearchID: b.SearchID, Status: models.StatusCompleted}
	if b.Result != nil {
		env = *b.Result
	}
	writeJSON(w, http.StatusOK, env)
}

func (b *Backend) searchArtists(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody{Error: `Query parameter "q" is required`})
		return
	}

	artists := b.Artists[q]
	if artists == nil {
		artists = []models.Artist{}
	}
	writeJSON(w, http.StatusOK, models.ArtistList{Artists: artists})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
