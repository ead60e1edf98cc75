package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msriffel/clientrech/internal/infra/http/middleware"
	"github.com/msriffel/clientrech/internal/usecase"
)

type SuggestionHandler struct {
	SuggestUC *usecase.SuggestStatusUseCase
	AcceptUC  *usecase.AcceptSuggestionUseCase
}

func NewSuggestionHandler(
	suggestUC *usecase.SuggestStatusUseCase,
	acceptUC *usecase.AcceptSuggestionUseCase,
) *SuggestionHandler {
	return &SuggestionHandler{
		SuggestUC: suggestUC,
		AcceptUC:  acceptUC,
	}
}

// Suggest (POST /clients/{id}/status/suggest) só calcula, não persiste.
func (h *SuggestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	suggestion, err := h.SuggestUC.Execute(r.Context(), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestion)
}

// Accept (POST /clients/{id}/status/accept) aplica a sugestão no status.
func (h *SuggestionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var input usecase.AcceptSuggestionInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}
	input.ClientID = chi.URLParam(r, "id")

	if err := h.AcceptUC.Execute(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordSuggestionAccepted(input.SuggestedStatus)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
