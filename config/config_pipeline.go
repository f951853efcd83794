package config

import (
	"time"

	"github.com/morfeolab/morfeo/pkg/extractor/vision"
	"github.com/morfeolab/morfeo/pkg/pipeline"
	"github.com/morfeolab/morfeo/pkg/structurer/llm"
)

type extractionConfig struct {
	Model string `yaml:"model"`

	Timeout   string `yaml:"timeout"`
	MaxTokens int    `yaml:"max_tokens"`
}

type structuringConfig struct {
	Model string `yaml:"model"`

	MaxTokens int `yaml:"max_tokens"`
}

func (cfg *Config) registerPipeline(f *configFile) error {
	extractionCompleter, err := cfg.Completer(f.Extraction.Model)

	if err != nil {
		return err
	}

	var extractionOptions []vision.Option

	if f.Extraction.Timeout != "" {
		timeout, err := time.ParseDuration(f.Extraction.Timeout)

		if err != nil {
			return err
		}

		extractionOptions = append(extractionOptions, vision.WithTimeout(timeout))
	}

	if f.Extraction.MaxTokens > 0 {
		extractionOptions = append(extractionOptions, vision.WithMaxTokens(f.Extraction.MaxTokens))
	}

	extraction, err := vision.New(extractionCompleter, extractionOptions...)

	if err != nil {
		return err
	}

	structuringCompleter, err := cfg.Completer(f.Structuring.Model)

	if err != nil {
		return err
	}

	var structuringOptions []llm.Option

	if f.Structuring.MaxTokens > 0 {
		structuringOptions = append(structuringOptions, llm.WithMaxTokens(f.Structuring.MaxTokens))
	}

	structuring, err := llm.New(structuringCompleter, structuringOptions...)

	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg.rasterizer, extraction, structuring)

	if err != nil {
		return err
	}

	cfg.pipeline = p

	return nil
}
