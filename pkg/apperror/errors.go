package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. The Code
// distinguishes business rejections from system errors for callers.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Intent Validation (VAL) ----

func ErrInvalidIntent(reason string) *AppError {
	return New("VAL_001", fmt.Sprintf("Invalid payment intent: %s", reason), http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidRating() *AppError {
	return New("VAL_003", "Rating must be between 0 and 1", http.StatusBadRequest)
}

// Validation returns a generic VAL_004 validation error for malformed input.
func Validation(message string) *AppError {
	return New("VAL_004", message, http.StatusBadRequest)
}

// ---- Settlement Business Logic (SET) ----

func ErrInsufficientBalance() *AppError {
	return New("SET_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrTraceNotFound(traceID string) *AppError {
	return New("SET_002", fmt.Sprintf("Trace %s not found", traceID), http.StatusNotFound)
}

func ErrGrantNotFound(traceID string) *AppError {
	return New("SET_003", fmt.Sprintf("No access grant for trace %s", traceID), http.StatusNotFound)
}

func ErrUnknownBackend(name string) *AppError {
	return New("SET_004", fmt.Sprintf("Unknown settlement backend %q", name), http.StatusBadRequest)
}

// ---- Anchoring & Disputes (ANC) ----

func ErrEmptyBatch() *AppError {
	return New("ANC_001", "Cannot commit an empty batch", http.StatusBadRequest)
}

func ErrBetNotFound(betID string) *AppError {
	return New("ANC_002", fmt.Sprintf("Bet %s not found", betID), http.StatusNotFound)
}

func ErrMarketNotFound(marketID string) *AppError {
	return New("ANC_003", fmt.Sprintf("Market %s not found", marketID), http.StatusNotFound)
}

func ErrProofNotFound(betID string) *AppError {
	return New("ANC_004", fmt.Sprintf("No inclusion proof for bet %s", betID), http.StatusNotFound)
}

// ---- Access (ACC) ----

func ErrInvalidToken() *AppError {
	return New("ACC_001", "Invalid or expired access token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrBackendUnreachable(err error) *AppError {
	return Wrap("SYS_002", "Settlement backend unreachable", http.StatusBadGateway, err)
}
