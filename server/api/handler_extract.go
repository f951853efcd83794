package api

import (
	"net/http"

	"github.com/morfeolab/morfeo/pkg/structurer"
)

func (h *Handler) handleExtractTables(w http.ResponseWriter, r *http.Request) {
	docs, err := readFiles(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	set, err := h.Pipeline().ExtractTables(r.Context(), docs)

	if err != nil {
		writeError(w, statusFromError(err), err)
		return
	}

	writeJson(w, set)
}

func (h *Handler) handleExtractMedicalData(w http.ResponseWriter, r *http.Request) {
	docs, err := readFiles(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fields, err := h.Pipeline().ProcessDocuments(r.Context(), docs)

	if err != nil {
		writeError(w, statusFromError(err), err)
		return
	}

	if fields == nil {
		fields = []structurer.Field{}
	}

	writeJson(w, fields)
}
