package config

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/adrianliechti/suggest/pkg/store"
	"github.com/adrianliechti/suggest/pkg/store/memory"
	"github.com/adrianliechti/suggest/pkg/store/postgres"
)

func (cfg *Config) RegisterStore(p store.Provider) {
	cfg.store = p
}

func (cfg *Config) Store() (store.Provider, error) {
	if cfg.store == nil {
		return nil, errors.New("store not configured")
	}

	return cfg.store, nil
}

type storeConfig struct {
	Type string `yaml:"type"`

	URL     string `yaml:"url"`
	Migrate *bool  `yaml:"migrate"`

	MaxConns int32 `yaml:"max_conns"`
}

func (cfg *Config) registerStore(f *configFile) error {
	config := f.Store

	if config == nil {
		config = &storeConfig{
			Type: "memory",
		}
	}

	p, err := createStore(*config)

	if err != nil {
		return err
	}

	cfg.RegisterStore(p)

	return nil
}

func createStore(cfg storeConfig) (store.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "memory":
		return memory.New(), nil

	case "postgres", "postgresql":
		return postgresStore(cfg)

	default:
		return nil, errors.New("invalid store type: " + cfg.Type)
	}
}

func postgresStore(cfg storeConfig) (store.Provider, error) {
	if cfg.URL == "" {
		return nil, errors.New("missing postgres url")
	}

	migrate := true

	if cfg.Migrate != nil {
		migrate = *cfg.Migrate
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := postgres.New(ctx, postgres.Config{
		DSN: cfg.URL,

		MaxConns:       cfg.MaxConns,
		MigrateOnStart: migrate,
	})

	if err != nil {
		return nil, err
	}

	return s, nil
}
