package api

import (
	"encoding/json"
	"net/http"

	"github.com/morfeolab/morfeo/pkg/extractor"
)

func (h *Handler) handleStructureClinicalData(w http.ResponseWriter, r *http.Request) {
	var set extractor.TableSet

	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rows := extractor.Flatten(&set)

	writeJson(w, rows)
}
