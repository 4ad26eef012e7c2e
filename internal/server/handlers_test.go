package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pajakio/bupot-extract/internal/config"
	"github.com/pajakio/bupot-extract/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(apiKey string) *Server {
	cfg := config.DefaultConfig()
	cfg.Mode = config.ModeServer
	cfg.APIKey = apiKey
	return NewServer(extract.NewService(cfg.MaxFileSize), cfg, zap.NewNop())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleExtractText(t *testing.T) {
	s := newTestServer("")
	router := s.router()

	payload := `{"text": "FORMULIR BPBS\nH.1\nH.2\nH.3\nDokumen Referensi\nFaktur Pajak"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "A", body["format"])
	assert.NotEmpty(t, body["id"])
	assert.NotNil(t, body["record"])
}

func TestHandleExtractTextBadRequests(t *testing.T) {
	s := newTestServer("")
	router := s.router()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "invalid_json", payload: `{"text": `},
		{name: "missing_text", payload: `{}`},
		{name: "empty_text", payload: `{"text": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleExtractFileNotAPDF(t *testing.T) {
	s := newTestServer("")
	router := s.router()

	buf, contentType := multipartBody(t, "certificate.pdf", []byte("not really a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/file", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["error"])
}

func TestHandleExtractFileMissingPart(t *testing.T) {
	s := newTestServer("")
	router := s.router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/file", strings.NewReader("plain body"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidateFileNotAPDF(t *testing.T) {
	s := newTestServer("")
	router := s.router()

	buf, contentType := multipartBody(t, "certificate.pdf", []byte("not really a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/file", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["valid"])
	assert.NotEmpty(t, body["message"])
}

func TestHandleInfo(t *testing.T) {
	s := newTestServer("")
	router := s.router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "bupot-extract", body["name"])
	assert.NotEmpty(t, body["version"])
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer("secret")
	router := s.router()

	// Health stays reachable without the API key.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestAPIKeyMiddleware(t *testing.T) {
	s := newTestServer("secret")
	router := s.router()

	payload := `{"text": "FORMULIR BPBS\nBukti Pemotongan"}`

	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{name: "missing_key", key: "", wantCode: http.StatusUnauthorized},
		{name: "wrong_key", key: "nope", wantCode: http.StatusUnauthorized},
		{name: "correct_key", key: "secret", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(payload))
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAPIKeyDisabledWhenEmpty(t *testing.T) {
	s := newTestServer("")
	router := s.router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
