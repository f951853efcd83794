package rasterizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/morfeolab/morfeo/pkg/document"
)

// ErrRasterization marks documents whose bytes cannot be rendered as the
// declared kind.
var ErrRasterization = errors.New("rasterization failed")

type Provider interface {
	Rasterize(ctx context.Context, doc document.Document) ([]document.Page, error)
}

var _ Provider = (*Rasterizer)(nil)

// Rasterizer turns a source document into page images: PDFs go through the
// configured PDF backend, images pass through as a single page.
type Rasterizer struct {
	pdf Provider
}

func New(pdf Provider) *Rasterizer {
	return &Rasterizer{
		pdf: pdf,
	}
}

func (r *Rasterizer) Rasterize(ctx context.Context, doc document.Document) ([]document.Page, error) {
	switch doc.Kind {
	case document.KindPDF:
		return r.pdf.Rasterize(ctx, doc)

	case document.KindImage:
		return rasterizeImage(doc)
	}

	return nil, fmt.Errorf("%w: %v", document.ErrUnsupportedFormat, doc.Kind)
}
