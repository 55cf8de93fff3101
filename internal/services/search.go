package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/degrees/internal/models"
	"github.com/desertthunder/degrees/internal/shared"
)

// Generic messages used when the server supplies no error text.
const (
	MsgStartFailed  = "Failed to start search"
	MsgStatusFailed = "Failed to get search status"
	MsgResultFailed = "Failed to get search result"
)

var _ SearchAPI = (*SearchClient)(nil)

// APIError is a non-2xx answer from the search API.
type APIError struct {
	StatusCode int
	Message    string // server {"error": ...} text, possibly empty
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", shared.ErrAPIRequest, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", shared.ErrAPIRequest, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return errors.Join(shared.ErrAPIRequest, shared.ErrSearchNotFound)
	}
	return shared.ErrAPIRequest
}

// ServerMessage returns the text to show a user for err.
//
// API errors yield the server's message or fallback; other errors (network, decoding) yield their own text.
func ServerMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	return err.Error()
}

// SearchClient is the typed client for the search API.
type SearchClient struct {
	api *APIService
}

// NewSearchClient wraps an [APIService].
func NewSearchClient(api *APIService) *SearchClient {
	if api == nil {
		api = NewAPIService("", nil)
	}
	return &SearchClient{api: api}
}

// API exposes the underlying raw transport.
func (c *SearchClient) API() *APIService { return c.api }

// StartSearch posts the artist pair and algorithm.
func (c *SearchClient) StartSearch(ctx context.Context, req models.SearchRequest) (*models.SearchStarted, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	resp, err := c.api.Post(ctx, "/api/search", body)
	if err != nil {
		return nil, err
	}

	var started models.SearchStarted
	if err := decode(resp, &started); err != nil {
		return nil, err
	}
	if started.SearchID == "" {
		return nil, fmt.Errorf("%w: response has no search_id", shared.ErrDecode)
	}
	return &started, nil
}

// Status fetches the progress of a search.
func (c *SearchClient) Status(ctx context.Context, searchID string) (*models.ProgressUpdate, error) {
	if searchID == "" {
		return nil, fmt.Errorf("%w: search id", shared.ErrMissingArgument)
	}

	resp, err := c.api.Get(ctx, "/api/search/"+url.PathEscape(searchID)+"/status")
	if err != nil {
		return nil, err
	}

	var update models.ProgressUpdate
	if err := decode(resp, &update); err != nil {
		return nil, err
	}
	return &update, nil
}

// Result fetches the final result of a search.
func (c *SearchClient) Result(ctx context.Context, searchID string) (*models.ResultEnvelope, error) {
	if searchID == "" {
		return nil, fmt.Errorf("%w: search id", shared.ErrMissingArgument)
	}

	resp, err := c.api.Get(ctx, "/api/search/"+url.PathEscape(searchID)+"/result")
	if err != nil {
		return nil, err
	}

	var env models.ResultEnvelope
	if err := decode(resp, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// SearchArtists looks up autocomplete suggestions for query.
func (c *SearchClient) SearchArtists(ctx context.Context, query string) ([]models.Artist, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	resp, err := c.api.Get(ctx, "/api/artists/search?q="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}

	var list models.ArtistList
	if err := decode(resp, &list); err != nil {
		return nil, err
	}
	return list.Artists, nil
}

// decode maps non-2xx answers to [*APIError] and unmarshals 2xx bodies into out.
func decode(resp *APIResponse, out any) error {
	if !resp.OK() {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body models.ErrorBody
		if err := json.Unmarshal(resp.Body, &body); err == nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrDecode, err)
	}
	return nil
}
