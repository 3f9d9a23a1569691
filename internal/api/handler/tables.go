package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tannerhall/floorman/internal/api/request"
	"github.com/tannerhall/floorman/internal/api/response"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/services/tables"
)

// TablesHandler handles table availability endpoints
type TablesHandler struct {
	tables *tables.Policy
}

// NewTablesHandler creates a new tables handler
func NewTablesHandler(tables *tables.Policy) *TablesHandler {
	return &TablesHandler{tables: tables}
}

// Status handles GET /api/v1/events/{event}/tables
func (h *TablesHandler) Status(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	round, err := model.ParseRound(r.URL.Query().Get("round"))
	if err != nil {
		WriteError(w, err)
		return
	}

	timeSlot, err := strconv.Atoi(r.URL.Query().Get("time_slot"))
	if err != nil || timeSlot < 1 {
		WriteError(w, model.ErrInvalidTimeSlot)
		return
	}

	disabled, err := h.tables.DisabledTables(r.Context(), eventName, round, timeSlot)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TablesStatus{
		Round:    string(round),
		TimeSlot: timeSlot,
		Disabled: disabled,
	})
}

// Toggle handles POST /api/v1/events/{event}/tables/toggle
func (h *TablesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	var req request.ToggleTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	round, err := model.ParseRound(req.Round)
	if err != nil {
		WriteError(w, err)
		return
	}
	if req.TimeSlot < 1 {
		WriteError(w, model.ErrInvalidTimeSlot)
		return
	}

	disabled, err := h.tables.ToggleTable(r.Context(), eventName, round, req.TimeSlot, req.Table)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ToggleTableResponse{
		Table:    req.Table,
		Disabled: disabled,
	})
}
