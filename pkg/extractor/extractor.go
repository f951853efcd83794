package extractor

import (
	"context"

	"github.com/morfeolab/morfeo/pkg/document"
)

type Provider interface {
	ExtractTables(ctx context.Context, pages []document.Encoded) (*TableSet, error)
}

// Table is one table recovered from a report page, exactly as the model
// returned it.
type Table struct {
	Page int `json:"page"`

	Headers []string   `json:"headers"`
	Data    [][]string `json:"data"`
}

type TableSet struct {
	Tables []Table `json:"tables"`
}

// Row is a single table row flattened into a header-keyed mapping.
type Row map[string]string
