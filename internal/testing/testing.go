// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/desertthunder/degrees/internal/models"
)

// MockSearchAPI is a scripted test double for services.SearchAPI.
//
// Unset funcs answer with zero values. Every call is recorded.
type MockSearchAPI struct {
	StartFn   func(req models.SearchRequest) (*models.SearchStarted, error)
	StatusFn  func(searchID string, call int) (*models.ProgressUpdate, error)
	ResultFn  func(searchID string) (*models.ResultEnvelope, error)
	ArtistsFn func(query string) ([]models.Artist, error)

	mu        sync.Mutex
	starts    []models.SearchRequest
	statusIDs []string
	resultIDs []string
	queries   []string
}

func (m *MockSearchAPI) StartSearch(ctx context.Context, req models.SearchRequest) (*models.SearchStarted, error) {
	m.mu.Lock()
	m.starts = append(m.starts, req)
	m.mu.Unlock()
	if m.StartFn == nil {
		return &models.SearchStarted{SearchID: "mock"}, nil
	}
	return m.StartFn(req)
}

func (m *MockSearchAPI) Status(ctx context.Context, searchID string) (*models.ProgressUpdate, error) {
	m.mu.Lock()
	m.statusIDs = append(m.statusIDs, searchID)
	call := len(m.statusIDs)
	m.mu.Unlock()
	if m.StatusFn == nil {
		return &models.ProgressUpdate{Status: models.StatusRunning}, nil
	}
	return m.StatusFn(searchID, call)
}

func (m *MockSearchAPI) Result(ctx context.Context, searchID string) (*models.ResultEnvelope, error) {
	m.mu.Lock()
	m.resultIDs = append(m.resultIDs, searchID)
	m.mu.Unlock()
	if m.ResultFn == nil {
		return &models.ResultEnvelope{}, nil
	}
	return m.ResultFn(searchID)
}

func (m *MockSearchAPI) SearchArtists(ctx context.Context, query string) ([]models.Artist, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	if m.ArtistsFn == nil {
		return nil, nil
	}
	return m.ArtistsFn(query)
}

// Starts returns the recorded StartSearch requests.
func (m *MockSearchAPI) Starts() []models.SearchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.SearchRequest(nil), m.starts...)
}

// StatusIDs returns the search ids passed to Status, in call order.
func (m *MockSearchAPI) StatusIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.statusIDs...)
}

// ResultIDs returns the search ids passed to Result, in call order.
func (m *MockSearchAPI) ResultIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.resultIDs...)
}

// Queries returns the autocomplete queries, in call order.
func (m *MockSearchAPI) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

// StatusSequence scripts Status to walk through updates, repeating the last one.
func StatusSequence(updates ...models.ProgressUpdate) func(string, int) (*models.ProgressUpdate, error) {
	return func(_ string, call int) (*models.ProgressUpdate, error) {
		if len(updates) == 0 {
			return &models.ProgressUpdate{Status: models.StatusRunning}, nil
		}
		i := call - 1
		if i >= len(updates) {
			i = len(updates) - 1
		}
		u := updates[i]
		return &u, nil
	}
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
	calls    int
	mu       sync.Mutex
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.response, m.err
}

// Calls returns how many requests reached the transport.
func (m *MockRoundTripper) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
