package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/morfeolab/morfeo/pkg/document"
	"github.com/morfeolab/morfeo/pkg/extractor"
	"github.com/morfeolab/morfeo/pkg/structurer"

	"github.com/stretchr/testify/require"
)

type fakeRasterizer struct {
	err error
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, doc document.Document) ([]document.Page, error) {
	if f.err != nil {
		return nil, f.err
	}

	return []document.Page{
		{
			Number: 1,

			Content:     doc.Content,
			ContentType: "image/png",
		},
	}, nil
}

type fakeExtractor struct {
	set *extractor.TableSet
	err error

	pages []document.Encoded
}

func (f *fakeExtractor) ExtractTables(ctx context.Context, pages []document.Encoded) (*extractor.TableSet, error) {
	f.pages = pages

	if f.err != nil {
		return nil, f.err
	}

	return f.set, nil
}

type fakeStructurer struct {
	fields []structurer.Field
	err    error

	rows []extractor.Row
}

func (f *fakeStructurer) Structure(ctx context.Context, rows []extractor.Row) ([]structurer.Field, error) {
	f.rows = rows

	if f.err != nil {
		return nil, f.err
	}

	return f.fields, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer

	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	require.NoError(t, err)

	return buf.Bytes()
}

func testDocuments(t *testing.T) []document.Document {
	return []document.Document{
		{Name: "report-1.png", Content: pngBytes(t), Kind: document.KindImage},
		{Name: "report-2.png", Content: pngBytes(t), Kind: document.KindImage},
	}
}

func TestProcessDocuments(t *testing.T) {
	e := &fakeExtractor{
		set: &extractor.TableSet{
			Tables: []extractor.Table{
				{
					Page: 1,

					Headers: []string{"Esame", "Risultato", "Unita di Misura", "Valori di Riferimento"},

					Data: [][]string{
						{"FOLATI", "3,15", "ng/mL", "3,1 - 20,5"},
					},
				},
			},
		},
	}

	s := &fakeStructurer{
		fields: []structurer.Field{
			{
				Name:  "FOLATI",
				Value: "3.15",
				Unit:  "ng/mL",

				RangeLow:  "3.1",
				RangeHigh: "20.5",
			},
		},
	}

	p, err := New(&fakeRasterizer{}, e, s)
	require.NoError(t, err)

	fields, err := p.ProcessDocuments(context.Background(), testDocuments(t))
	require.NoError(t, err)

	require.Len(t, fields, 1)
	require.Equal(t, "FOLATI", fields[0].Name)
	require.Equal(t, "3.15", fields[0].Value)

	// one encoded page per document
	require.Len(t, e.pages, 2)

	// rows reach the structurer flattened and header-keyed
	require.Len(t, s.rows, 1)
	require.Equal(t, "FOLATI", s.rows[0]["esame"])
	require.Equal(t, "3,1 - 20,5", s.rows[0]["valoriDiRiferimento"])
}

func TestExtractTablesOrdersPages(t *testing.T) {
	e := &fakeExtractor{set: &extractor.TableSet{Tables: []extractor.Table{}}}

	p, err := New(&fakeRasterizer{}, e, &fakeStructurer{})
	require.NoError(t, err)

	_, err = p.ExtractTables(context.Background(), testDocuments(t))
	require.NoError(t, err)

	require.Len(t, e.pages, 2)

	for _, page := range e.pages {
		require.Equal(t, "image/png", page.ContentType)
	}
}

func TestExtractTablesNoDocuments(t *testing.T) {
	p, err := New(&fakeRasterizer{}, &fakeExtractor{}, &fakeStructurer{})
	require.NoError(t, err)

	_, err = p.ExtractTables(context.Background(), nil)
	require.Error(t, err)
}

func TestProcessDocumentsRasterizationFailure(t *testing.T) {
	cause := errors.New("broken document")

	p, err := New(&fakeRasterizer{err: cause}, &fakeExtractor{}, &fakeStructurer{})
	require.NoError(t, err)

	_, err = p.ProcessDocuments(context.Background(), testDocuments(t))

	require.ErrorIs(t, err, cause)
}

func TestNewRequiresProviders(t *testing.T) {
	_, err := New(nil, &fakeExtractor{}, &fakeStructurer{})
	require.Error(t, err)

	_, err = New(&fakeRasterizer{}, nil, &fakeStructurer{})
	require.Error(t, err)

	_, err = New(&fakeRasterizer{}, &fakeExtractor{}, nil)
	require.Error(t, err)
}
