package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tannerhall/floorman/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeTerminalRequired    = "TERMINAL_REQUIRED"
	CodeAccountNotNumeric   = "ACCOUNT_NOT_NUMERIC"
	CodeAccountLength       = "ACCOUNT_LENGTH"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeNewPlayerRequired   = "NEW_PLAYER_REQUIRED"
	CodeDuplicateAccount    = "DUPLICATE_ACCOUNT"
	CodeInvalidRound        = "INVALID_ROUND"
	CodeInvalidTimeSlot     = "INVALID_TIME_SLOT"
	CodeNotEligible         = "NOT_ELIGIBLE"
	CodeAlreadyRegistered   = "ALREADY_REGISTERED"
	CodePaymentTypeRequired = "PAYMENT_TYPE_REQUIRED"
	CodePaymentMismatch     = "PAYMENT_MISMATCH"
	CodeSplitTypesSame      = "SPLIT_TYPES_SAME"
	CodeSplitAmountInvalid  = "SPLIT_AMOUNT_INVALID"
	CodeTournamentNotFound  = "TOURNAMENT_NOT_FOUND"
	CodeNoPendingSeating    = "NO_PENDING_SEATING"
	CodeNoSeatSelected      = "NO_SEAT_SELECTED"
	CodeNoSeatsAvailable    = "NO_SEATS_AVAILABLE"
	CodeSeatConflict        = "SEAT_CONFLICT"
	CodeSeatUnavailable     = "SEAT_UNAVAILABLE"
	CodeInvalidSeat         = "INVALID_SEAT"
	CodeTableOccupied       = "TABLE_OCCUPIED"
	CodeTableFixedClosed    = "TABLE_FIXED_CLOSED"
	CodeStoreUnavailable    = "STORE_UNAVAILABLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// A NoSeatsError carries a preference-aware message
	var noSeats *model.NoSeatsError
	if errors.As(err, &noSeats) {
		return &httpError{http.StatusConflict, APIError{CodeNoSeatsAvailable, noSeats.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrAccountNotNumeric):
		return &httpError{http.StatusBadRequest, APIError{CodeAccountNotNumeric, "Account number must contain only digits"}}
	case errors.Is(err, model.ErrAccountLength):
		return &httpError{http.StatusBadRequest, APIError{CodeAccountLength, "Account number must be 1 to 14 digits"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNewPlayerRequired):
		return &httpError{http.StatusNotFound, APIError{CodeNewPlayerRequired, "Player not enrolled; new player entry is required"}}
	case errors.Is(err, model.ErrDuplicateAccount):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateAccount, "Account number already enrolled"}}
	case errors.Is(err, model.ErrInvalidRound):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRound, "Unknown round"}}
	case errors.Is(err, model.ErrInvalidTimeSlot):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTimeSlot, "Time slot must be a positive number"}}
	case errors.Is(err, model.ErrNotEligible):
		return &httpError{http.StatusConflict, APIError{CodeNotEligible, "Player is not eligible for this round"}}
	case errors.Is(err, model.ErrAlreadyRegistered):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyRegistered, "Player is already registered for this round"}}
	case errors.Is(err, model.ErrPaymentTypeRequired):
		return &httpError{http.StatusBadRequest, APIError{CodePaymentTypeRequired, "A valid payment type is required"}}
	case errors.Is(err, model.ErrPaymentMismatch):
		return &httpError{http.StatusBadRequest, APIError{CodePaymentMismatch, "Payment total does not match the required cost"}}
	case errors.Is(err, model.ErrSplitTypesSame):
		return &httpError{http.StatusBadRequest, APIError{CodeSplitTypesSame, "Split payment types must differ"}}
	case errors.Is(err, model.ErrSplitAmountInvalid):
		return &httpError{http.StatusBadRequest, APIError{CodeSplitAmountInvalid, "Both halves of a split payment must be positive"}}
	case errors.Is(err, model.ErrTournamentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTournamentNotFound, "Tournament not found"}}
	case errors.Is(err, model.ErrNoPendingRegistration):
		return &httpError{http.StatusNotFound, APIError{CodeNoPendingSeating, "No seating session in progress for this terminal"}}
	case errors.Is(err, model.ErrNoSeatSelected):
		return &httpError{http.StatusConflict, APIError{CodeNoSeatSelected, "No seat has been selected"}}
	case errors.Is(err, model.ErrNoSeatsAvailable):
		return &httpError{http.StatusConflict, APIError{CodeNoSeatsAvailable, "No seats available"}}
	case errors.Is(err, model.ErrSeatConflict):
		return &httpError{http.StatusConflict, APIError{CodeSeatConflict, "Seat was taken by another terminal; pick again"}}
	case errors.Is(err, model.ErrSeatUnavailable):
		return &httpError{http.StatusConflict, APIError{CodeSeatUnavailable, "Seat is not available"}}
	case errors.Is(err, model.ErrInvalidSeat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSeat, "Table or seat number out of range"}}
	case errors.Is(err, model.ErrTableOccupied):
		return &httpError{http.StatusConflict, APIError{CodeTableOccupied, "Table has seated players and cannot be closed"}}
	case errors.Is(err, model.ErrTableFixedClosed):
		return &httpError{http.StatusConflict, APIError{CodeTableFixedClosed, "Table is permanently closed for this round"}}
	case errors.Is(err, model.ErrStoreUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStoreUnavailable, "Store unavailable; try again"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewTerminalRequiredError creates an error for requests missing the
// terminal identifier
func NewTerminalRequiredError() error {
	return &httpError{http.StatusBadRequest, APIError{CodeTerminalRequired, "X-Terminal-ID header is required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
