package config

import (
	"net/http"
	"net/url"

	"github.com/adrianliechti/suggest/pkg/otel"
)

type proxyConfig struct {
	URL string `yaml:"url"`
}

func (cfg *proxyConfig) proxyTransport() (*http.Transport, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()

	if cfg == nil || cfg.URL == "" {
		return tr, nil
	}

	proxyURL, err := url.Parse(cfg.URL)

	if err != nil {
		return nil, err
	}

	tr.Proxy = http.ProxyURL(proxyURL)

	return tr, nil
}

// proxyClient returns an instrumented client that routes through the
// configured proxy, or directly if none is set.
func (cfg *proxyConfig) proxyClient() (*http.Client, error) {
	transport, err := cfg.proxyTransport()

	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: otel.Transport(transport),
	}, nil
}
