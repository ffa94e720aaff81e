package amazon

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/adrianliechti/suggest/pkg/suggester"
)

var _ suggester.Provider = &Client{}

type Client struct {
	url    string
	client *http.Client

	timeout time.Duration

	marketplace string
	locale      string
	alias       string
}

// New creates a client for the marketplace completion endpoint.
func New(options ...Option) (*Client, error) {
	c := &Client{
		url:    "https://completion.amazon.com/api/2017/suggestions",
		client: http.DefaultClient,

		timeout: 10 * time.Second,

		marketplace: "ATVPDKIKX0DER",
		locale:      "en_US",
		alias:       "aps",
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Suggest(ctx context.Context, query string, options *suggester.SuggestOptions) (*suggester.Result, error) {
	if query == "" {
		return nil, suggester.NewFetchError(suggester.SourceAmazon, suggester.ErrInvalidQuery)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	data, err := c.fetch(ctx, query)

	if err != nil {
		return nil, suggester.NewFetchError(suggester.SourceAmazon, err)
	}

	suggestions := Normalize(data)

	return &suggester.Result{
		Query:  query,
		Source: suggester.SourceAmazon,

		Suggestions: suggester.Truncate(suggestions, suggester.Limit(options)),
	}, nil
}

func (c *Client) fetch(ctx context.Context, query string) (any, error) {
	u, err := url.Parse(c.url)

	if err != nil {
		return nil, err
	}

	values := u.Query()
	values.Set("mid", c.marketplace)
	values.Set("lop", c.locale)
	values.Set("alias", c.alias)
	values.Set("prefix", query)

	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)

	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", suggester.UserAgent)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("unexpected upstream status", "source", suggester.SourceAmazon, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	var data any

	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	return data, nil
}
