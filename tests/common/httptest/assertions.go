//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status code and decodes the body into out.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode int, out any) {
	t.Helper()
	require.Equal(t, expectedCode, w.Code, "unexpected status: %s", w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
}

// AssertErrorResponse checks the status code and the flat {"error": "..."} body.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode int, expectedMessage string) {
	t.Helper()
	require.Equal(t, expectedCode, w.Code, "unexpected status: %s", w.Body.String())

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, expectedMessage, body.Error)
}
