package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// APIClient sends JSON requests to an http.Handler, usually the gin engine.
type APIClient struct {
	Handler http.Handler
	// Token is sent as a bearer token when set
	Token string
}

// NewAPIClient creates a client for handler
func NewAPIClient(handler http.Handler) *APIClient {
	return &APIClient{Handler: handler}
}

// WithToken returns a copy of the client that authenticates with token
func (c *APIClient) WithToken(token string) *APIClient {
	clone := *c
	clone.Token = token
	return &clone
}

// Do sends a request; body is marshalled to JSON unless it is nil.
// Extra headers are given as key/value pairs.
func (c *APIClient) Do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers must be key/value pairs")

	var reader io.Reader
	if body != nil {
		reader = ToJSONReader(t, body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	c.Handler.ServeHTTP(w, req)
	return w
}

// Envelope is the response wrapper returned by every API endpoint
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Details   []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

// DecodeData asserts the status, then returns the envelope's data field
func DecodeData[T any](t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) T {
	t.Helper()
	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	env := JSONResponseAs[Envelope[T]](t, w)
	require.True(t, env.Success, "expected success envelope, body: %s", w.Body.String())
	return env.Data
}

// AssertError asserts the status and the error code of an error envelope and
// returns its message.
func AssertError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) string {
	t.Helper()
	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	env := JSONResponseAs[Envelope[json.RawMessage]](t, w)
	assert.False(t, env.Success, "Expected success to be false")
	require.NotNil(t, env.Error, "Expected error object in response")
	assert.Equal(t, expectedCode, env.Error.Code, "Unexpected error code")
	return env.Error.Message
}

// JSONResponseAs parses the response body into the provided type.
func JSONResponseAs[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var result T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result), "Failed to parse JSON response")
	return result
}

// ToJSONReader converts a value to a JSON io.Reader.
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}
