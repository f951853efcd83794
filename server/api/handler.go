package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/morfeolab/morfeo/config"
	"github.com/morfeolab/morfeo/pkg/document"
	"github.com/morfeolab/morfeo/pkg/extractor/vision"
	"github.com/morfeolab/morfeo/pkg/rasterizer"
	"github.com/morfeolab/morfeo/pkg/structurer"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/extract-tables", h.handleExtractTables)
	r.Post("/extract-medical-data", h.handleExtractMedicalData)
	r.Post("/structure-clinical-data", h.handleStructureClinicalData)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return http.StatusBadRequest

	case errors.Is(err, rasterizer.ErrRasterization):
		return http.StatusUnprocessableEntity

	case errors.Is(err, vision.ErrTimeout):
		return http.StatusGatewayTimeout

	case errors.Is(err, vision.ErrUpstream):
		return http.StatusBadGateway

	case errors.Is(err, structurer.ErrStructuring):
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
