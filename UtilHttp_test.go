package gobitflyer

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHttpClient(t *testing.T) {
	client, err := NewHttpClient(2*time.Second, 5*time.Second, "")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, client.Timeout)

	transport := client.Transport.(*http.Transport)
	assert.Equal(t, 2*time.Second, transport.TLSHandshakeTimeout)
	assert.Equal(t, 5*time.Second, transport.ResponseHeaderTimeout)

	client, err = NewHttpClient(0, 0, "socks5://127.0.0.1:1090")
	require.NoError(t, err)
	assert.Equal(t, Seconds(DEFAULT_CONNECT_TIMEOUT+DEFAULT_READ_TIMEOUT), client.Timeout)

	_, err = NewHttpClient(0, 0, "://bad")
	assert.Error(t, err)
}

func TestNewHttpRequest_KeepsStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, POST, r.Method)
		assert.Equal(t, `{"a":1}`, string(body))
		assert.Equal(t, "v", r.Header.Get("X-Test"))
		assert.Equal(t, APPLICATION_JSON, r.Header.Get(ACCEPT))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"status":-1}`)
	}))
	defer server.Close()

	body, status, err := NewHttpRequest(server.Client(), POST, server.URL+"/v1/me/x", `{"a":1}`, map[string]string{"X-Test": "v"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, `{"status":-1}`, string(body))
}

func TestNewHttpRequest_TransportError(t *testing.T) {
	_, _, err := NewHttpRequest(http.DefaultClient, GET, "http://[::1", "", nil)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, GET, transportErr.Method)
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, Seconds(1.5))
	assert.Equal(t, time.Duration(0), Seconds(0))
}
