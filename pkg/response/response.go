// Package response writes the JSON envelope used by every endpoint:
// {"status": ..., "message": ..., "data": ..., "errors": ...}.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/tattvam/pkg/apperr"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(w, http.StatusNotFound, message)
}

// AppError maps a service failure to the HTTP envelope:
// NotFound→404, Validation→422, Unauthorized→401, Forbidden→403,
// Conflict→409, anything else→500.
func AppError(w http.ResponseWriter, err error) {
	var e *apperr.Error
	msg := "Internal Server Error"
	kind := apperr.KindOf(err)
	if errors.As(err, &e) {
		msg = e.Message
	}

	switch kind {
	case apperr.KindNotFound:
		write(w, http.StatusNotFound, envelope{Status: http.StatusNotFound, Message: msg})
	case apperr.KindValidation:
		write(w, http.StatusUnprocessableEntity, envelope{
			Status:  http.StatusUnprocessableEntity,
			Message: msg,
			Errors:  fieldsOrNil(e),
		})
	case apperr.KindUnauthorized:
		write(w, http.StatusUnauthorized, envelope{Status: http.StatusUnauthorized, Message: msg})
	case apperr.KindForbidden:
		write(w, http.StatusForbidden, envelope{Status: http.StatusForbidden, Message: msg})
	case apperr.KindConflict:
		write(w, http.StatusConflict, envelope{Status: http.StatusConflict, Message: msg})
	default:
		write(w, http.StatusInternalServerError, envelope{Status: http.StatusInternalServerError, Message: "Internal Server Error"})
	}
}

func fieldsOrNil(e *apperr.Error) interface{} {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e.Fields
}
