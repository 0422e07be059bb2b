package roomsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/parkside-labs/roomgrid/pkg/httpx"
)

// Machine-readable error codes shared between the server and clients. Every
// domain failure maps to exactly one code so callers can branch without
// parsing messages.
const (
	ErrorCodeInvalidRequest        = "invalid_request"
	ErrorCodeInvalidCredentials    = "invalid_credentials"
	ErrorCodeDuplicateIdentity     = "duplicate_identity"
	ErrorCodeNoPendingVerification = "no_pending_verification"
	ErrorCodeInvalidCode           = "invalid_code"
	ErrorCodeTooManyAttempts       = "too_many_attempts"
	ErrorCodeNotVerified           = "not_verified"
	ErrorCodeInvalidKey            = "invalid_key"
	ErrorCodeSlotTaken             = "slot_taken"
	ErrorCodeBookingNotFound       = "booking_not_found"
	ErrorCodeNotOwner              = "not_owner"
	ErrorCodeUserNotFound          = "user_not_found"
	ErrorCodeCannotDeleteAdmin     = "cannot_delete_admin"
	ErrorCodeBootstrapDisabled     = "bootstrap_disabled"
	ErrorCodeAlreadyBootstrapped   = "already_bootstrapped"
	ErrorCodeAccessDenied          = "access_denied"
	ErrorCodeServerError           = "server_error"
)

// APIError is the wire shape of every non-2xx response. It implements the
// error interface so the SDK client can return it directly.
type APIError struct {
	// StatusCode is the HTTP status; not part of the JSON body.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Message is the human-readable description.
	Message string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes the error to an HTTP response. Used by the server's
// handlers so the wire shape has a single source of truth.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// WithMessage returns a copy with a more specific description.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Message: msg}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request is malformed or missing required parameters",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid username or password",
	}

	ErrDuplicateIdentity = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeDuplicateIdentity,
		Message:    "username or email is already registered",
	}

	ErrNoPendingVerification = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNoPendingVerification,
		Message:    "no signup is pending verification for this token",
	}

	ErrInvalidCode = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidCode,
		Message:    "verification code is invalid or expired",
	}

	ErrTooManyAttempts = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Code:       ErrorCodeTooManyAttempts,
		Message:    "too many failed verification attempts",
	}

	ErrNotVerified = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeNotVerified,
		Message:    "account has not completed email verification",
	}

	ErrInvalidKey = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidKey,
		Message:    "slot key is malformed or out of range",
	}

	ErrSlotTaken = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeSlotTaken,
		Message:    "slot is already booked",
	}

	ErrBookingNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeBookingNotFound,
		Message:    "no booking exists at this slot",
	}

	ErrNotOwner = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeNotOwner,
		Message:    "booking belongs to another user",
	}

	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeUserNotFound,
		Message:    "user not found",
	}

	ErrCannotDeleteAdmin = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeCannotDeleteAdmin,
		Message:    "admin accounts cannot be deleted",
	}

	ErrBootstrapDisabled = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeBootstrapDisabled,
		Message:    "bootstrap is not enabled on this deployment",
	}

	ErrAlreadyBootstrapped = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeAlreadyBootstrapped,
		Message:    "an admin account already exists",
	}

	ErrAccessDenied = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeAccessDenied,
		Message:    "insufficient privileges for this operation",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)
