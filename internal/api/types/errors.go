package types

import (
	"net/http"

	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// FromAppError maps any error into the envelope's error object.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	if e, ok := err.(*appErr.AppError); ok {
		return &APIError{Code: string(e.Code), Message: e.Message}
	}
	return &APIError{Code: string(appErr.CodeUnknown), Message: err.Error()}
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(err error) int {
	e, ok := err.(*appErr.AppError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeForbidden:
		return http.StatusForbidden
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeConflict, appErr.CodeAlreadyExists:
		return http.StatusConflict
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
