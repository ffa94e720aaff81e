package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
)

type Client struct {
	Suggestions SuggestionService
	Status      StatusService
}

func New(url string, opts ...RequestOption) *Client {
	opts = slices.Concat(opts, []RequestOption{WithURL(url)})

	return &Client{
		Suggestions: NewSuggestionService(opts...),
		Status:      NewStatusService(opts...),
	}
}

type RequestConfig struct {
	URL string

	Client *http.Client
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = strings.TrimRight(url, "/")
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func Ptr[T any](v T) *T {
	return &v
}

func convertError(resp *http.Response) error {
	var data struct {
		Detail string `json:"detail"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err == nil && data.Detail != "" {
		return errors.New(data.Detail)
	}

	return errors.New(resp.Status)
}
