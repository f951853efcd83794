package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/morfeolab/morfeo/pkg/document"
	"github.com/morfeolab/morfeo/pkg/extractor"
	"github.com/morfeolab/morfeo/pkg/rasterizer"
	"github.com/morfeolab/morfeo/pkg/structurer"

	"github.com/google/uuid"
)

// Pipeline wires the extraction stages together: rasterize, encode, extract
// tables, flatten, structure. Every collaborator is injected once at
// construction; no stage holds state across requests.
type Pipeline struct {
	rasterizer rasterizer.Provider
	extractor  extractor.Provider
	structurer structurer.Provider
}

func New(r rasterizer.Provider, e extractor.Provider, s structurer.Provider) (*Pipeline, error) {
	if r == nil || e == nil || s == nil {
		return nil, errors.New("rasterizer, extractor and structurer are required")
	}

	return &Pipeline{
		rasterizer: r,
		extractor:  e,
		structurer: s,
	}, nil
}

// ExtractTables rasterizes and encodes all documents, then recovers tables
// from their pages with a single batched vision call.
func (p *Pipeline) ExtractTables(ctx context.Context, docs []document.Document) (*extractor.TableSet, error) {
	id := uuid.New().String()

	pages, err := p.rasterize(ctx, docs)

	if err != nil {
		return nil, err
	}

	encoded := make([]document.Encoded, 0, len(pages))

	for _, page := range pages {
		e, err := document.Encode(page)

		if err != nil {
			return nil, err
		}

		encoded = append(encoded, e)
	}

	slog.Info("documents rasterized", "request", id, "files", len(docs), "pages", len(encoded))

	set, err := p.extractor.ExtractTables(ctx, encoded)

	if err != nil {
		return nil, err
	}

	slog.Info("tables recovered", "request", id, "tables", len(set.Tables))

	return set, nil
}

// FlattenRows converts a table set into header-keyed rows. Purely local.
func (p *Pipeline) FlattenRows(set *extractor.TableSet) []extractor.Row {
	return extractor.Flatten(set)
}

// ProcessDocuments runs the full chain and returns standardized medical
// fields. A failing stage aborts the rest; there are no partial results.
func (p *Pipeline) ProcessDocuments(ctx context.Context, docs []document.Document) ([]structurer.Field, error) {
	set, err := p.ExtractTables(ctx, docs)

	if err != nil {
		return nil, err
	}

	rows := extractor.Flatten(set)

	fields, err := p.structurer.Structure(ctx, rows)

	if err != nil {
		return nil, err
	}

	return fields, nil
}

// rasterize renders every document concurrently and reassembles the pages in
// input order.
func (p *Pipeline) rasterize(ctx context.Context, docs []document.Document) ([]document.Page, error) {
	if len(docs) == 0 {
		return nil, errors.New("no documents provided")
	}

	results := make([][]document.Page, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup

	for i, doc := range docs {
		wg.Add(1)

		go func(i int, doc document.Document) {
			defer wg.Done()

			pages, err := p.rasterizer.Rasterize(ctx, doc)

			if err != nil {
				errs[i] = fmt.Errorf("rasterizing %q: %w", doc.Name, err)
				return
			}

			results[i] = pages
		}(i, doc)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	var pages []document.Page

	for _, result := range results {
		pages = append(pages, result...)
	}

	return pages, nil
}
