package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/f3rmion/tamprogen/internal/proverb"
)

var (
	// ErrNoResult is returned when a search claims a match but carries no record.
	ErrNoResult = errors.New("search response has found=true but no result")
	// ErrNoGenerated is returned when a search has neither a match nor generated text.
	ErrNoGenerated = errors.New("search response has no generated text")
	// ErrNoResults is returned when a filter response lacks the results array.
	ErrNoResults = errors.New("filter response has no results")
	// ErrNoRowType is returned when a filter row has no Literal/Figurative value.
	ErrNoRowType = errors.New("filter row has no Literal/Figurative value")
)

// searchResponse mirrors the search endpoint body.
type searchResponse struct {
	Found     bool            `json:"found"`
	Result    *proverb.Record `json:"result"`
	Generated *string         `json:"generated"`
}

// filterResponse mirrors the filter endpoint body.
type filterResponse struct {
	Results *[]proverb.FilterRow `json:"results"`
}

// InterpretSearch classifies a search response as Found or Generated.
// The status code is ignored; only decoding decides success.
func InterpretSearch(raw *RawResponse) (proverb.SearchOutcome, error) {
	if raw == nil {
		return proverb.SearchOutcome{}, errors.New("nil response")
	}

	var resp searchResponse
	if err := json.Unmarshal(raw.Body, &resp); err != nil {
		return proverb.SearchOutcome{}, fmt.Errorf("decoding search response: %w", err)
	}

	if resp.Found {
		if resp.Result == nil {
			return proverb.SearchOutcome{}, ErrNoResult
		}
		return proverb.Found(*resp.Result), nil
	}

	if resp.Generated == nil {
		return proverb.SearchOutcome{}, ErrNoGenerated
	}
	return proverb.Generated(*resp.Generated), nil
}

// InterpretFilter decodes a filter response. An empty array is a valid,
// empty outcome; a missing one is a format error.
func InterpretFilter(raw *RawResponse) (proverb.FilterOutcome, error) {
	if raw == nil {
		return proverb.FilterOutcome{}, errors.New("nil response")
	}

	var resp filterResponse
	if err := json.Unmarshal(raw.Body, &resp); err != nil {
		return proverb.FilterOutcome{}, fmt.Errorf("decoding filter response: %w", err)
	}

	if resp.Results == nil {
		return proverb.FilterOutcome{}, ErrNoResults
	}
	for i, row := range *resp.Results {
		if row.Type == "" {
			return proverb.FilterOutcome{}, fmt.Errorf("row %d: %w", i+1, ErrNoRowType)
		}
	}
	return proverb.FilterOutcome{Rows: *resp.Results}, nil
}
