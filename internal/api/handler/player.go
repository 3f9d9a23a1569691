package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tannerhall/floorman/internal/api/middleware"
	"github.com/tannerhall/floorman/internal/api/request"
	"github.com/tannerhall/floorman/internal/api/response"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/services/directory"
	"github.com/tannerhall/floorman/internal/services/registration"
	"github.com/tannerhall/floorman/internal/services/seating"
)

// PlayerHandler handles player directory endpoints
type PlayerHandler struct {
	directory    *directory.Service
	registration *registration.Engine
	seating      *seating.Engine
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(directory *directory.Service, registration *registration.Engine, seating *seating.Engine) *PlayerHandler {
	return &PlayerHandler{
		directory:    directory,
		registration: registration,
		seating:      seating,
	}
}

// Create handles POST /api/v1/events/{event}/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]
	terminal := middleware.MustGetTerminal(r.Context())

	var req request.NewPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.AccountNumber == "" {
		WriteError(w, NewInvalidRequestError("account_number is required"))
		return
	}
	if req.FirstName == "" && req.LastName == "" {
		WriteError(w, NewInvalidRequestError("a first or last name is required"))
		return
	}

	player := &model.Player{
		AccountNumber: model.AccountNumber(req.AccountNumber),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		EntryType:     model.EntryType(req.EntryType),
		Host:          req.Host,
	}

	var submit *registration.SubmitRequest
	if req.Registration != nil {
		submit = &registration.SubmitRequest{
			TimeSlot: req.Registration.TimeSlot,
			Payment:  paymentSpec(req.Registration.Payment),
			Mulligan: paymentSpecPtr(req.Registration.Mulligan),
			Host:     req.Host,
			Comment:  req.Registration.Comment,
			Employee: req.Registration.Employee,
		}
	}

	added, pending, err := h.registration.RegisterNewPlayer(r.Context(), eventName, player, submit)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.NewPlayerResponse{Player: response.PlayerFromModel(added)}
	if pending != nil {
		h.seating.Begin(terminal, pending)
		p := response.PendingFromModel(pending)
		resp.Pending = &p
	}

	response.Created(w, resp)
}

// Get handles GET /api/v1/events/{event}/players/{account}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	player, err := h.directory.Lookup(r.Context(), vars["event"], vars["account"])
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// List handles GET /api/v1/events/{event}/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	players, err := h.directory.List(r.Context(), eventName)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Player, len(players))
	for i, p := range players {
		out[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// Replace handles PUT /api/v1/events/{event}/players
func (h *PlayerHandler) Replace(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	var req request.ReplacePlayersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	players := make([]*model.Player, len(req.Players))
	for i, p := range req.Players {
		players[i] = &model.Player{
			AccountNumber: model.AccountNumber(p.AccountNumber),
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			EntryType:     model.EntryType(p.EntryType),
			Host:          p.Host,
		}
	}

	if err := h.directory.Replace(r.Context(), eventName, players); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
