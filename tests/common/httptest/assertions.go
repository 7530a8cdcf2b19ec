//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"click-collect/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < http.StatusOK || w.Code >= http.StatusMultipleChoices {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and the message of the error envelope.
// An empty msg only checks that the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var envelope httperr.Response
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &envelope), "undecodable error body: %s", w.Body.String()) {
		return
	}
	if msg != "" {
		assert.Contains(t, envelope.Error.Message, msg)
	}
}

func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, path string) {
	t.Helper()
	assert.Equal(t, path, w.Header().Get("Location"), "Location header")
}
