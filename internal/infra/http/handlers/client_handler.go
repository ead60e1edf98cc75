package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msriffel/clientrech/internal/infra/http/middleware"
	"github.com/msriffel/clientrech/internal/usecase"
)

type ClientHandler struct {
	CreateUC *usecase.CreateClientUseCase
	UpdateUC *usecase.UpdateClientUseCase
	DeleteUC *usecase.DeleteClientUseCase
	ListUC   *usecase.ListClientsUseCase
}

func NewClientHandler(
	createUC *usecase.CreateClientUseCase,
	updateUC *usecase.UpdateClientUseCase,
	deleteUC *usecase.DeleteClientUseCase,
	listUC *usecase.ListClientsUseCase,
) *ClientHandler {
	return &ClientHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
		ListUC:   listUC,
	}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordClientCreated()
	writeJSON(w, http.StatusCreated, output)
}

// List (GET /clients?search=&status=&contact=&window_days=)
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	windowDays, _ := strconv.Atoi(r.URL.Query().Get("window_days"))

	input := usecase.ListClientsInput{
		Search:        r.URL.Query().Get("search"),
		Status:        r.URL.Query().Get("status"),
		ContactFilter: r.URL.Query().Get("contact"),
		WindowDays:    windowDays,
	}

	clients, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	client, err := h.ListUC.Get(r.Context(), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	var input usecase.UpdateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	client, err := h.UpdateUC.Execute(r.Context(), clientID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	if err := h.DeleteUC.Execute(r.Context(), clientID); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordClientDeleted()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Stats (GET /stats?window_days=)
func (h *ClientHandler) Stats(w http.ResponseWriter, r *http.Request) {
	windowDays, _ := strconv.Atoi(r.URL.Query().Get("window_days"))

	stats, err := h.ListUC.Stats(r.Context(), usecase.ListClientsInput{WindowDays: windowDays})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
