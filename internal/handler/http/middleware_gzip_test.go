package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func echoBody(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(body)
}

// ─────────────────────────────────────────────
// withGZipRequests
// ─────────────────────────────────────────────

func TestWithGZipRequests_InflatesBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(gzipBytes(t, `{"tipo":"todo"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	var seenEncoding string
	withGZipRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEncoding = r.Header.Get("Content-Encoding")
		echoBody(w, r)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"tipo":"todo"}`, rr.Body.String())
	assert.Empty(t, seenEncoding)
}

func TestWithGZipRequests_PlainBodyUntouched(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader([]byte("plain")))
	rr := httptest.NewRecorder()

	withGZipRequests(http.HandlerFunc(echoBody)).ServeHTTP(rr, req)

	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZipRequests_InvalidData(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	called := false

	withGZipRequests(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestWrappedReadCloser_CloseOnce(t *testing.T) {
	calls := 0
	rc := &wrappedReadCloser{Reader: bytes.NewReader(nil), OnClose: func() { calls++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, calls)
}

// ─────────────────────────────────────────────
// Response compression through the router
// ─────────────────────────────────────────────

func TestInit_CompressesResponses(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, configPath, nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	newTestHandler(nil).Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{}}`, string(body))
}
