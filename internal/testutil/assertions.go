package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// Envelope is the {success, message} response shape
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AssertEnvelope decodes the response envelope and checks the success flag
// and message.
func AssertEnvelope(t *testing.T, resp *http.Response, success bool, message string) {
	t.Helper()

	var env Envelope
	AssertJSONResponse(t, resp, &env)
	assert.Equal(t, success, env.Success, "unexpected success flag")
	if message != "" {
		assert.Equal(t, message, env.Message, "unexpected message")
	}
}
