//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"click-collect/internal/handler/httperr"
	"click-collect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Class("bad input", errs.ErrValidation), want: http.StatusBadRequest},
		{name: "conflict", err: errs.Class("insufficient stock", errs.ErrConflict), want: http.StatusBadRequest},
		{name: "unauthenticated", err: errs.Class("invalid credentials", errs.ErrUnauthenticated), want: http.StatusUnauthorized},
		{name: "forbidden", err: errs.Class("not yours", errs.ErrForbidden), want: http.StatusForbidden},
		{name: "not found", err: errs.Class("order not found", errs.ErrNotFound), want: http.StatusNotFound},
		{name: "wrapped class survives", err: errs.Wrap(errs.Class("order not found", errs.ErrNotFound), "load order"), want: http.StatusNotFound},
		{name: "unavailable", err: errs.Class("smtp not configured", errs.ErrUnavailable), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}
