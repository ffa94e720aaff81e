package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/adrianliechti/suggest/pkg/aggregator"
	"github.com/adrianliechti/suggest/pkg/store"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	suggesters []aggregator.Provider

	store store.Provider
}

// Parse reads the configuration file at path. An empty path yields the
// default configuration.
func Parse(path string) (*Config, error) {
	file := &configFile{}

	if path != "" {
		f, err := parseFile(path)

		if err != nil {
			return nil, err
		}

		file = f
	}

	c := &Config{
		Address: ":8000",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerSuggesters(file); err != nil {
		return nil, err
	}

	if err := c.registerStore(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Suggesters yaml.Node `yaml:"suggesters"`

	Store *storeConfig `yaml:"store"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &config, nil
}

// Aggregator returns an aggregator over all registered suggesters in
// registration order.
func (cfg *Config) Aggregator() *aggregator.Aggregator {
	return aggregator.New(cfg.suggesters...)
}

// Close releases resources held by registered components.
func (cfg *Config) Close() {
	if c, ok := cfg.store.(interface{ Close() }); ok {
		c.Close()
	}
}
