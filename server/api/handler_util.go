package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/morfeolab/morfeo/pkg/document"
)

const maxUploadSize = 64 << 20

// readFiles collects the multipart "files" field into documents, rejecting
// unsupported extensions before any work is spent on them.
func readFiles(r *http.Request) ([]document.Document, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		return nil, errors.New("no files provided")
	}

	var docs []document.Document

	for _, header := range r.MultipartForm.File["files"] {
		kind, err := document.DetectKind(header.Filename)

		if err != nil {
			return nil, err
		}

		file, err := header.Open()

		if err != nil {
			return nil, err
		}

		content, err := io.ReadAll(file)
		file.Close()

		if err != nil {
			return nil, err
		}

		docs = append(docs, document.Document{
			Name: header.Filename,

			Content: content,
			Kind:    kind,
		})
	}

	return docs, nil
}
