package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/adrianliechti/suggest/server/api"
)

type SuggestionService struct {
	Options []RequestOption
}

func NewSuggestionService(opts ...RequestOption) SuggestionService {
	return SuggestionService{
		Options: opts,
	}
}

type SuggestionResult = api.SuggestionResult

type SuggestionRequest struct {
	Query string
	Limit *int
}

// Get returns the suggestions of a single source.
func (r *SuggestionService) Get(ctx context.Context, source string, input SuggestionRequest, opts ...RequestOption) (*SuggestionResult, error) {
	var result SuggestionResult

	if err := r.get(ctx, "/api/suggestions/"+url.PathEscape(source), input, &result, opts...); err != nil {
		return nil, err
	}

	return &result, nil
}

// All returns the suggestions of every source that answered.
func (r *SuggestionService) All(ctx context.Context, input SuggestionRequest, opts ...RequestOption) ([]SuggestionResult, error) {
	var result []SuggestionResult

	if err := r.get(ctx, "/api/suggestions/all", input, &result, opts...); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SuggestionService) get(ctx context.Context, path string, input SuggestionRequest, result any, opts ...RequestOption) error {
	c := newRequestConfig(slices.Concat(r.Options, opts)...)

	values := url.Values{}
	values.Set("q", input.Query)

	if input.Limit != nil {
		values.Set("limit", strconv.Itoa(*input.Limit))
	}

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+path+"?"+values.Encode(), nil)

	resp, err := c.Client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return convertError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
