package amazon

import (
	"net/http"
	"time"
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

func WithMarketplace(id string) Option {
	return func(c *Client) {
		c.marketplace = id
	}
}

func WithLocale(locale string) Option {
	return func(c *Client) {
		c.locale = locale
	}
}
