package google

import (
	"net/http"
	"time"

	"github.com/adrianliechti/suggest/pkg/suggester"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLanguage(language string) Option {
	return func(c *Client) {
		c.params.Set("hl", language)
	}
}

// WithParam sets a constant query parameter sent with every request.
func WithParam(key, value string) Option {
	return func(c *Client) {
		c.params.Set(key, value)
	}
}

// WithSource overrides the source tag reported in results and errors.
func WithSource(source suggester.Source) Option {
	return func(c *Client) {
		c.source = source
	}
}
