package config

import (
	"errors"
	"strings"

	"github.com/morfeolab/morfeo/pkg/limiter"
	"github.com/morfeolab/morfeo/pkg/otel"
	"github.com/morfeolab/morfeo/pkg/provider"
	"github.com/morfeolab/morfeo/pkg/provider/anthropic"
	"github.com/morfeolab/morfeo/pkg/provider/openai"
)

func (cfg *Config) RegisterCompleter(id string, p provider.Completer) {
	if cfg.completer == nil {
		cfg.completer = make(map[string]provider.Completer)
	}

	if _, ok := cfg.completer[""]; !ok {
		cfg.completer[""] = p
	}

	cfg.completer[id] = p
}

func (cfg *Config) Completer(id string) (provider.Completer, error) {
	if cfg.completer != nil {
		if c, ok := cfg.completer[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("completer not found: " + id)
}

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Models map[string]modelConfig `yaml:"models"`
}

type modelConfig struct {
	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerProviders(f *configFile) error {
	for _, p := range f.Providers {
		for id, m := range p.Models {
			completer, err := createCompleter(p, id)

			if err != nil {
				return err
			}

			if _, ok := completer.(limiter.Completer); !ok {
				completer = limiter.NewCompleter(createLimiter(m.Limit), completer)
			}

			if _, ok := completer.(otel.Completer); !ok {
				completer = otel.NewCompleter(p.Type, id, completer)
			}

			cfg.RegisterCompleter(id, completer)
		}
	}

	return nil
}

func createCompleter(cfg providerConfig, model string) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "openai", "":
		var options []openai.Option

		if cfg.Token != "" {
			options = append(options, openai.WithToken(cfg.Token))
		}

		return openai.NewCompleter(cfg.URL, model, options...)

	case "anthropic":
		var options []anthropic.Option

		if cfg.Token != "" {
			options = append(options, anthropic.WithToken(cfg.Token))
		}

		return anthropic.NewCompleter(cfg.URL, model, options...)

	default:
		return nil, errors.New("invalid provider type: " + cfg.Type)
	}
}
