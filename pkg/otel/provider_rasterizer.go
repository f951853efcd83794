package otel

import (
	"context"

	"github.com/morfeolab/morfeo/pkg/document"
	"github.com/morfeolab/morfeo/pkg/rasterizer"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Rasterizer interface {
	Observable
	rasterizer.Provider
}

type observableRasterizer struct {
	name string

	rasterizer rasterizer.Provider

	pages metric.Int64Counter
}

func NewRasterizer(name string, p rasterizer.Provider) Rasterizer {
	meter := otel.Meter(instrumentationName)

	pages, _ := meter.Int64Counter("morfeo.rasterizer.pages")

	return &observableRasterizer{
		name: name,

		rasterizer: p,

		pages: pages,
	}
}

func (p *observableRasterizer) otelSetup() {
}

func (p *observableRasterizer) Rasterize(ctx context.Context, doc document.Document) ([]document.Page, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "rasterize "+p.name)
	defer span.End()

	pages, err := p.rasterizer.Rasterize(ctx, doc)

	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	p.pages.Add(ctx, int64(len(pages)),
		metric.WithAttributes(attribute.String("morfeo.document.kind", string(doc.Kind))),
	)

	return pages, nil
}
