package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/adrianliechti/suggest/pkg/suggester"

	"golang.org/x/net/html/charset"
)

var _ suggester.Provider = &Client{}

type Client struct {
	url    string
	client *http.Client

	source  suggester.Source
	timeout time.Duration

	params url.Values
}

// New creates a client for the web search completion endpoint.
func New(options ...Option) (*Client, error) {
	c := &Client{
		url:    "http://www.google.com/complete/search",
		client: http.DefaultClient,

		source:  suggester.SourceGoogle,
		timeout: 10 * time.Second,

		params: url.Values{
			"client": []string{"gws-wiz"},
			"hl":     []string{"en"},
		},
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Suggest(ctx context.Context, query string, options *suggester.SuggestOptions) (*suggester.Result, error) {
	if query == "" {
		return nil, suggester.NewFetchError(c.source, suggester.ErrInvalidQuery)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.fetch(ctx, query)

	if err != nil {
		return nil, suggester.NewFetchError(c.source, err)
	}

	suggestions := Normalize(text)

	return &suggester.Result{
		Query:  query,
		Source: c.source,

		Suggestions: suggester.Truncate(suggestions, suggester.Limit(options)),
	}, nil
}

func (c *Client) fetch(ctx context.Context, query string) (string, error) {
	u, err := url.Parse(c.url)

	if err != nil {
		return "", err
	}

	values := u.Query()

	for key, val := range c.params {
		values[key] = val
	}

	values.Set("q", query)

	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)

	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", suggester.UserAgent)

	resp, err := c.client.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("unexpected upstream status", "source", c.source, "status", resp.StatusCode)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))

	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(reader)

	if err != nil {
		return "", err
	}

	return string(data), nil
}
