package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tannerhall/floorman/internal/api/middleware"
	"github.com/tannerhall/floorman/internal/api/request"
	"github.com/tannerhall/floorman/internal/api/response"
	"github.com/tannerhall/floorman/internal/services/seating"
)

// SeatingHandler handles seat assignment endpoints. Every route is scoped to
// the calling terminal's session.
type SeatingHandler struct {
	seating *seating.Engine
}

// NewSeatingHandler creates a new seating handler
func NewSeatingHandler(seating *seating.Engine) *SeatingHandler {
	return &SeatingHandler{seating: seating}
}

// Pending handles GET /api/v1/events/{event}/seating
func (h *SeatingHandler) Pending(w http.ResponseWriter, r *http.Request) {
	terminal := middleware.MustGetTerminal(r.Context())

	pending, err := h.seating.Pending(terminal)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PendingFromModel(pending))
}

// Available handles GET /api/v1/events/{event}/seating/available. Repeated
// "prefer" query parameters restrict the listing to those seat positions.
func (h *SeatingHandler) Available(w http.ResponseWriter, r *http.Request) {
	terminal := middleware.MustGetTerminal(r.Context())

	var preferences []int
	for _, raw := range r.URL.Query()["prefer"] {
		pos, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("invalid seat preference"))
			return
		}
		preferences = append(preferences, pos)
	}

	open, err := h.seating.ListAvailableSeats(r.Context(), terminal, preferences)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AvailableSeats{Tables: open})
}

// Random handles POST /api/v1/events/{event}/seating/random
func (h *SeatingHandler) Random(w http.ResponseWriter, r *http.Request) {
	terminal := middleware.MustGetTerminal(r.Context())

	var req request.RandomSeatRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
	}

	seat, err := h.seating.AssignRandomSeat(r.Context(), terminal, req.Preferences)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SeatFromModel(seat))
}

// Select handles POST /api/v1/events/{event}/seating/select
func (h *SeatingHandler) Select(w http.ResponseWriter, r *http.Request) {
	terminal := middleware.MustGetTerminal(r.Context())

	var req request.SelectSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.seating.SelectSeat(r.Context(), terminal, req.Table, req.Seat); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Seat{Table: req.Table, Seat: req.Seat})
}

// Conflict handles POST /api/v1/events/{event}/seating/conflict
func (h *SeatingHandler) Conflict(w http.ResponseWriter, r *http.Request) {
	terminal := middleware.MustGetTerminal(r.Context())

	var req request.ConflictTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var err error
	if req.Clear {
		err = h.seating.ClearConflictTable(terminal, req.Table)
	} else {
		err = h.seating.MarkConflictTable(r.Context(), terminal, req.Table)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Confirm handles POST /api/v1/events/{event}/seating/confirm
func (h *SeatingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	terminal := middleware.MustGetTerminal(r.Context())

	committed, err := h.seating.ConfirmAssignment(r.Context(), terminal)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ConfirmResponse{
		Committed: response.RegistrationsFromModel(committed),
	})
}

// Abandon handles POST /api/v1/events/{event}/seating/abandon
func (h *SeatingHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	terminal := middleware.MustGetTerminal(r.Context())

	if err := h.seating.Abandon(terminal); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
