package document

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

var kinds = map[string]Kind{
	".pdf":  KindPDF,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".tiff": KindImage,
	".bmp":  KindImage,
}

// DetectKind maps a file name to its document kind via the extension
// allowlist. Anything outside the list is rejected before it reaches the
// pipeline.
func DetectKind(name string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(name))

	if kind, ok := kinds[ext]; ok {
		return kind, nil
	}

	return "", fmt.Errorf("%w: %q (allowed: %s)", ErrUnsupportedFormat, name, strings.Join(Extensions(), ", "))
}

func Extensions() []string {
	result := make([]string, 0, len(kinds))

	for ext := range kinds {
		result = append(result, ext)
	}

	sort.Strings(result)

	return result
}

// Document is one uploaded file, scoped to a single request.
type Document struct {
	Name string

	Content []byte
	Kind    Kind
}

// Page is a single rasterized page.
type Page struct {
	Number int

	Content     []byte
	ContentType string
}

// Encoded is the transport-safe inline form of a page, ready to be attached
// to a model prompt.
type Encoded struct {
	ContentType string
	Content     []byte
}

// URL returns the page as a data URL.
func (e Encoded) URL() string {
	return "data:" + e.ContentType + ";base64," + base64.StdEncoding.EncodeToString(e.Content)
}

// Encode prepares a page for prompt attachment. Rasterization only emits
// model-acceptable raster types, so anything else is an encoding fault.
func Encode(p Page) (Encoded, error) {
	switch p.ContentType {
	case "image/png", "image/jpeg", "image/webp", "image/gif":
		return Encoded{
			ContentType: p.ContentType,
			Content:     p.Content,
		}, nil
	}

	return Encoded{}, fmt.Errorf("cannot encode page %d: %w: %q", p.Number, ErrUnsupportedFormat, p.ContentType)
}
