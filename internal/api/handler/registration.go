package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tannerhall/floorman/internal/api/middleware"
	"github.com/tannerhall/floorman/internal/api/request"
	"github.com/tannerhall/floorman/internal/api/response"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/services/registration"
	"github.com/tannerhall/floorman/internal/services/seating"
)

// RegistrationHandler handles search, submission and ledger endpoints
type RegistrationHandler struct {
	registration *registration.Engine
	seating      *seating.Engine
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registration *registration.Engine, seating *seating.Engine) *RegistrationHandler {
	return &RegistrationHandler{
		registration: registration,
		seating:      seating,
	}
}

// Search handles POST /api/v1/events/{event}/search
func (h *RegistrationHandler) Search(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	var req request.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.AccountNumber == "" {
		WriteError(w, NewInvalidRequestError("account_number is required"))
		return
	}

	round, err := model.ParseRound(req.Round)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.registration.SearchPlayer(r.Context(), eventName, req.AccountNumber, round)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SearchResultFromService(result))
}

// Submit handles POST /api/v1/events/{event}/registrations.
// A successful submission opens the terminal's seating session; the entries
// reach the ledger only when the assignment is confirmed.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]
	terminal := middleware.MustGetTerminal(r.Context())

	var req request.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.AccountNumber == "" {
		WriteError(w, NewInvalidRequestError("account_number is required"))
		return
	}

	pending, err := h.registration.SubmitRegistration(r.Context(), registration.SubmitRequest{
		EventName:     eventName,
		AccountNumber: req.AccountNumber,
		Round:         model.Round(req.Round),
		TimeSlot:      req.TimeSlot,
		Payment:       paymentSpec(req.Payment),
		Mulligan:      paymentSpecPtr(req.Mulligan),
		Update:        req.Update,
		Host:          req.Host,
		Comment:       req.Comment,
		Employee:      req.Employee,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	h.seating.Begin(terminal, pending)

	response.Accepted(w, response.PendingFromModel(pending))
}

// Ledger handles GET /api/v1/events/{event}/registrations
func (h *RegistrationHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	eventName := mux.Vars(r)["event"]

	regs, err := h.registration.Registrations(r.Context(), eventName)
	if err != nil {
		WriteError(w, err)
		return
	}

	if round := r.URL.Query().Get("round"); round != "" {
		parsed, err := model.ParseRound(round)
		if err != nil {
			WriteError(w, err)
			return
		}
		filtered := regs[:0:0]
		for _, reg := range regs {
			if reg.Round == parsed {
				filtered = append(filtered, reg)
			}
		}
		regs = filtered
	}

	response.JSON(w, http.StatusOK, response.RegistrationsFromModel(regs))
}

func paymentSpec(p request.Payment) model.PaymentSpec {
	return model.PaymentSpec{
		Type:        model.PaymentType(p.Type),
		Amount:      p.Amount,
		SplitType:   model.PaymentType(p.SplitType),
		SplitAmount: p.SplitAmount,
	}
}

func paymentSpecPtr(p *request.Payment) *model.PaymentSpec {
	if p == nil {
		return nil
	}
	spec := paymentSpec(*p)
	return &spec
}
