//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"appointment-agent/internal/handler/httperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse decodes the body into target when the status is 2xx
// and target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains
// expectedMsg. An empty expectedMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode error body: %s", w.Body.String())

	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertLocation returns the id at the end of a Location header under prefix.
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, prefix string) uuid.UUID {
	t.Helper()

	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, prefix+"/"), "Location %q not under %s", loc, prefix)

	id, err := uuid.Parse(strings.TrimPrefix(loc, prefix+"/"))
	require.NoError(t, err, "Location %q does not end with an id", loc)
	return id
}
