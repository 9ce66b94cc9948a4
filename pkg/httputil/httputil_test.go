package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"rolesync/pkg/apperrors"
)

func TestWriteErrorMapsCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"bad request", apperrors.New(apperrors.CodeBadRequest, "nope"), http.StatusBadRequest, "bad_request"},
		{"unauthorized", apperrors.New(apperrors.CodeUnauthorized, "nope"), http.StatusForbidden, "unauthorized"},
		{"not linked", apperrors.New(apperrors.CodeNotLinked, "nope"), http.StatusNotFound, "not_linked"},
		{"store failure", apperrors.Wrap(apperrors.CodeStore, "sync failed", errors.New("pq: down")), http.StatusInternalServerError, "internal"},
		{"membership failure", apperrors.Wrap(apperrors.CodeMembership, "sync failed", errors.New("502")), http.StatusInternalServerError, "internal"},
		{"uncoded", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error":"`+tt.wantCode+`"`)
		})
	}
}

func TestWriteErrorHidesWrappedCause(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, apperrors.Wrap(apperrors.CodeStore, "sync failed", errors.New("pq: password authentication failed")))

	assert.NotContains(t, rr.Body.String(), "password")
	assert.Contains(t, rr.Body.String(), `"message":"sync failed"`)
}
