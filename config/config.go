package config

import (
	"bytes"
	"os"

	"github.com/morfeolab/morfeo/pkg/pipeline"
	"github.com/morfeolab/morfeo/pkg/provider"
	"github.com/morfeolab/morfeo/pkg/rasterizer"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	completer map[string]provider.Completer

	rasterizer rasterizer.Provider

	pipeline *pipeline.Pipeline
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8000",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerProviders(file); err != nil {
		return nil, err
	}

	if err := c.registerRasterizer(file); err != nil {
		return nil, err
	}

	if err := c.registerPipeline(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (cfg *Config) Pipeline() *pipeline.Pipeline {
	return cfg.pipeline
}

func (cfg *Config) Rasterizer() rasterizer.Provider {
	return cfg.rasterizer
}

type configFile struct {
	Address string `yaml:"address"`

	Providers []providerConfig `yaml:"providers"`

	Rasterizer rasterizerConfig `yaml:"rasterizer"`

	Extraction  extractionConfig  `yaml:"extraction"`
	Structuring structuringConfig `yaml:"structuring"`
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

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
