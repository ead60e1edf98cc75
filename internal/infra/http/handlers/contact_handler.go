package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msriffel/clientrech/internal/usecase"
)

type ContactHandler struct {
	ContactUC *usecase.ContactUseCase
}

func NewContactHandler(contactUC *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{ContactUC: contactUC}
}

// Add (POST /clients/{id}/contacts)
func (h *ContactHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input usecase.AddContactInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}
	input.ClientID = chi.URLParam(r, "id")

	contact, err := h.ContactUC.Add(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	contacts, err := h.ContactUC.List(r.Context(), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	var input usecase.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	contact, err := h.ContactUC.Update(r.Context(), contactID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	if err := h.ContactUC.Delete(r.Context(), contactID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
