package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/msriffel/clientrech/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError traduz a taxonomia dos usecases para HTTP: DomainError vira 4xx
// (404 para NOT_FOUND), TechnicalError vira 500. Nada é engolido.
func writeError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		if de.Code == usecase.CodeNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: de.Message, Code: de.Code})
		return
	}

	if te, ok := err.(*usecase.TechnicalError); ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: te.Message, Code: te.Code})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
