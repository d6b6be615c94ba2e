// Package api talks to the remote proverb lookup service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/rs/zerolog"
)

const (
	searchPath = "/search/"
	filterPath = "/filter/"
)

// Client is a proverb service client. It never retries and sets no timeout
// of its own; only the caller's context can end a request early.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// RawResponse is an undecoded response. The status code is kept for logging
// only; interpretation always attempts to decode the body.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// filterRequest is the body of a filter call.
type filterRequest struct {
	Type    string `json:"type"`
	Keyword string `json:"keyword"`
}

// NewClient creates a client for the service rooted at baseURL.
// A nil httpClient uses a client without timeout.
func NewClient(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log.With().Str("component", "api").Logger(),
	}
}

// BaseURL returns the service root this client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DispatchSearch posts {"input_text": q.Text} to the search endpoint.
func (c *Client) DispatchSearch(ctx context.Context, q proverb.SearchQuery) (*RawResponse, error) {
	return c.post(ctx, searchPath, q)
}

// DispatchFilter posts {"type": ..., "keyword": ...} to the filter endpoint.
func (c *Client) DispatchFilter(ctx context.Context, q proverb.FilterQuery) (*RawResponse, error) {
	return c.post(ctx, filterPath, filterRequest{Type: string(q.Type), Keyword: q.Keyword})
}

func (c *Client) post(ctx context.Context, path string, payload any) (*RawResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("url", url).Int("bytes", len(body)).Msg("dispatch")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug().Str("url", url).Int("status", resp.StatusCode).Int("bytes", len(respBody)).Msg("response")

	return &RawResponse{StatusCode: resp.StatusCode, Body: respBody}, nil
}
