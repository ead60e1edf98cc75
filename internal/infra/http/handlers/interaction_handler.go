package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msriffel/clientrech/internal/infra/http/middleware"
	"github.com/msriffel/clientrech/internal/usecase"
)

type InteractionHandler struct {
	RecordUC      *usecase.RecordInteractionUseCase
	InteractionUC *usecase.InteractionUseCase
}

func NewInteractionHandler(
	recordUC *usecase.RecordInteractionUseCase,
	interactionUC *usecase.InteractionUseCase,
) *InteractionHandler {
	return &InteractionHandler{
		RecordUC:      recordUC,
		InteractionUC: interactionUC,
	}
}

// Record (POST /clients/{id}/interactions) grava a interação e avança a
// agenda do cliente numa tacada só.
func (h *InteractionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecordInteractionInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}
	input.ClientID = chi.URLParam(r, "id")

	output, err := h.RecordUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordInteraction(input.Type)
	writeJSON(w, http.StatusCreated, output)
}

func (h *InteractionHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	interactions, err := h.InteractionUC.List(r.Context(), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, interactions)
}

func (h *InteractionHandler) Update(w http.ResponseWriter, r *http.Request) {
	interactionID := chi.URLParam(r, "id")

	var input usecase.UpdateInteractionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	interaction, err := h.InteractionUC.Update(r.Context(), interactionID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, interaction)
}

func (h *InteractionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	interactionID := chi.URLParam(r, "id")

	if err := h.InteractionUC.Delete(r.Context(), interactionID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
