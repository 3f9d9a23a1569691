package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tannerhall/floorman/internal/api/request"
	"github.com/tannerhall/floorman/internal/api/response"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/storage"
)

// TournamentHandler handles per-event cost configuration endpoints
type TournamentHandler struct {
	storage storage.Storage
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(storage storage.Storage) *TournamentHandler {
	return &TournamentHandler{storage: storage}
}

// Get handles GET /api/v1/events/{event}/tournament. Events that have never
// saved a config report the standard cost schedule.
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	tournament, err := h.storage.GetTournament(r.Context(), eventName)
	if err != nil {
		if errors.Is(err, model.ErrTournamentNotFound) {
			tournament = model.DefaultTournament(eventName)
		} else {
			WriteError(w, err)
			return
		}
	}

	response.JSON(w, http.StatusOK, response.TournamentFromModel(tournament))
}

// Save handles PUT /api/v1/events/{event}/tournament
func (h *TournamentHandler) Save(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	var req request.SaveTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.EntryCost < 0 || req.RebuyCost < 0 || req.MulliganCost < 0 {
		WriteError(w, NewInvalidRequestError("costs must not be negative"))
		return
	}

	tournament := &model.Tournament{
		Name:         eventName,
		EntryCost:    req.EntryCost,
		RebuyCost:    req.RebuyCost,
		MulliganCost: req.MulliganCost,
	}

	if err := h.storage.SaveTournament(r.Context(), tournament); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TournamentFromModel(tournament))
}
