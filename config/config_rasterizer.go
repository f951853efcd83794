package config

import (
	"github.com/morfeolab/morfeo/pkg/otel"
	"github.com/morfeolab/morfeo/pkg/rasterizer"
	"github.com/morfeolab/morfeo/pkg/rasterizer/poppler"
)

type rasterizerConfig struct {
	Binary string `yaml:"binary"`
	DPI    int    `yaml:"dpi"`
}

func (cfg *Config) registerRasterizer(f *configFile) error {
	var options []poppler.Option

	if f.Rasterizer.Binary != "" {
		options = append(options, poppler.WithBinary(f.Rasterizer.Binary))
	}

	if f.Rasterizer.DPI > 0 {
		options = append(options, poppler.WithDPI(f.Rasterizer.DPI))
	}

	pdf, err := poppler.New(options...)

	if err != nil {
		return err
	}

	var r rasterizer.Provider = rasterizer.New(pdf)

	if _, ok := r.(otel.Rasterizer); !ok {
		r = otel.NewRasterizer("poppler", r)
	}

	cfg.rasterizer = r

	return nil
}
