package config

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/adrianliechti/suggest/pkg/aggregator"
	"github.com/adrianliechti/suggest/pkg/otel"
	"github.com/adrianliechti/suggest/pkg/suggester"
	"github.com/adrianliechti/suggest/pkg/suggester/amazon"
	"github.com/adrianliechti/suggest/pkg/suggester/google"
	"github.com/adrianliechti/suggest/pkg/suggester/youtube"
)

// RegisterSuggester adds a provider for source. Sources are aggregated in
// the order they are registered.
func (cfg *Config) RegisterSuggester(source suggester.Source, p suggester.Provider) {
	for i, s := range cfg.suggesters {
		if s.Source == source {
			cfg.suggesters[i].Provider = p
			return
		}
	}

	cfg.suggesters = append(cfg.suggesters, aggregator.Provider{
		Source:   source,
		Provider: p,
	})
}

// Suggesters returns the registered providers in registration order.
func (cfg *Config) Suggesters() []aggregator.Provider {
	return slices.Clone(cfg.suggesters)
}

func (cfg *Config) Suggester(source suggester.Source) (suggester.Provider, error) {
	for _, s := range cfg.suggesters {
		if s.Source == source {
			return s.Provider, nil
		}
	}

	return nil, errors.New("suggester not found: " + string(source))
}

type suggesterConfig struct {
	Type string `yaml:"type"`

	URL     string         `yaml:"url"`
	Timeout *time.Duration `yaml:"timeout"`

	Language    string `yaml:"language"`
	Marketplace string `yaml:"marketplace"`

	Proxy *proxyConfig `yaml:"proxy"`
}

type suggesterContext struct {
	Client *http.Client
}

func (cfg *Config) registerSuggesters(f *configFile) error {
	var configs map[string]suggesterConfig

	if f.Suggesters.Kind != 0 {
		if err := f.Suggesters.Decode(&configs); err != nil {
			return err
		}
	}

	var ids []string

	for i := 0; i+1 < len(f.Suggesters.Content); i += 2 {
		ids = append(ids, f.Suggesters.Content[i].Value)
	}

	if len(ids) == 0 {
		configs = map[string]suggesterConfig{}

		for _, s := range suggester.Sources {
			ids = append(ids, string(s))
			configs[string(s)] = suggesterConfig{Type: string(s)}
		}
	}

	for _, id := range ids {
		config, ok := configs[id]

		if !ok {
			continue
		}

		if config.Type == "" {
			config.Type = id
		}

		source, ok := suggester.ParseSource(strings.ToLower(config.Type))

		if !ok {
			return errors.New("invalid suggester type: " + config.Type)
		}

		if _, err := cfg.Suggester(source); err == nil {
			return errors.New("duplicate suggester type: " + config.Type)
		}

		context := suggesterContext{}

		client, err := config.Proxy.proxyClient()

		if err != nil {
			return err
		}

		context.Client = client

		p, err := createSuggester(source, config, context)

		if err != nil {
			return err
		}

		if _, ok := p.(otel.Suggester); !ok {
			p = otel.NewSuggester(string(source), id, p)
		}

		cfg.RegisterSuggester(source, p)
	}

	return nil
}

func createSuggester(source suggester.Source, cfg suggesterConfig, context suggesterContext) (suggester.Provider, error) {
	switch source {
	case suggester.SourceGoogle:
		return google.New(googleOptions(cfg, context)...)

	case suggester.SourceYouTube:
		return youtube.New(googleOptions(cfg, context)...)

	case suggester.SourceAmazon:
		return amazonSuggester(cfg, context)

	default:
		return nil, errors.New("invalid suggester type: " + cfg.Type)
	}
}

func googleOptions(cfg suggesterConfig, context suggesterContext) []google.Option {
	var options []google.Option

	if context.Client != nil {
		options = append(options, google.WithClient(context.Client))
	}

	if cfg.URL != "" {
		options = append(options, google.WithURL(cfg.URL))
	}

	if cfg.Timeout != nil {
		options = append(options, google.WithTimeout(*cfg.Timeout))
	}

	if cfg.Language != "" {
		options = append(options, google.WithLanguage(cfg.Language))
	}

	return options
}

func amazonSuggester(cfg suggesterConfig, context suggesterContext) (suggester.Provider, error) {
	var options []amazon.Option

	if context.Client != nil {
		options = append(options, amazon.WithClient(context.Client))
	}

	if cfg.URL != "" {
		options = append(options, amazon.WithURL(cfg.URL))
	}

	if cfg.Timeout != nil {
		options = append(options, amazon.WithTimeout(*cfg.Timeout))
	}

	if cfg.Marketplace != "" {
		options = append(options, amazon.WithMarketplace(cfg.Marketplace))
	}

	return amazon.New(options...)
}
