// Package httputil centralizes JSON response writing and the mapping from
// coded application errors to HTTP statuses.
package httputil

import (
	"encoding/json"
	"net/http"

	"rolesync/pkg/apperrors"
)

var statusByCode = map[apperrors.Code]int{
	apperrors.CodeBadRequest:   http.StatusBadRequest,
	apperrors.CodeUnauthorized: http.StatusForbidden,
	apperrors.CodeNotLinked:    http.StatusNotFound,
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded error to its HTTP status and writes the error
// body. Codes without a mapping are internal failures: 500 with the coded
// message only, never the wrapped cause.
func WriteError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
		code = apperrors.CodeInternal
	}
	WriteJSON(w, status, map[string]string{
		"error":   string(code),
		"message": apperrors.MessageOf(err),
	})
}
