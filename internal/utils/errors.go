package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrActiveLeaseExists  = errors.New("active_lease_exists")
	ErrLeaseClosed        = errors.New("lease_closed")
	ErrNoRowsUpdated      = errors.New("no_rows_updated")
)

// AppError carries an HTTP status together with the public message the
// handler should return. Services build these so controllers only have
// to hand them to HandleAppError.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(msg string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: msg}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: msg}
}

func NewConflictError(msg string) *AppError {
	return &AppError{StatusCode: http.StatusConflict, Message: msg}
}

func NewAuthError(msg string) *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Message: msg}
}

func NewInternalError(msg string, err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: msg, Err: err}
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondError(w, appErr.StatusCode, appErr.Message, appErr.Err)
	} else {
		RespondError(w, http.StatusInternalServerError, "Erreur interne du serveur", err)
	}
}
