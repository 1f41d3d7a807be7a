package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fsantini/lishgreek/internal/dict"
	"github.com/fsantini/lishgreek/internal/translit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *TranslateHandler {
	t.Helper()
	ix, err := dict.Build(context.Background(), strings.NewReader("και 100\nπως 50\n"), dict.BuildOptions{})
	require.NoError(t, err)
	log := slog.New(slog.DiscardHandler)
	return NewTranslateHandler(translit.New(ix), log)
}

func TestTranslateEndpoint(t *testing.T) {
	h := newHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate",
		strings.NewReader(`{"text":"kai pws"}`))
	rec := httptest.NewRecorder()

	h.Translate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp translateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "kai pws", resp.Text)
	assert.Equal(t, "και πως", resp.Translated)
}

func TestTranslateEndpointRejectsEmptyText(t *testing.T) {
	h := newHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Translate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateEndpointRejectsBadJSON(t *testing.T) {
	h := newHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	h.Translate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCandidatesEndpoint(t *testing.T) {
	h := newHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates?word=kai", nil)
	rec := httptest.NewRecorder()

	h.Candidates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp candidatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"ke"}, resp.Keys)
	assert.Equal(t, []string{"και"}, resp.Candidates)
}

func TestCandidatesEndpointRequiresWord(t *testing.T) {
	h := newHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/candidates", nil)
	rec := httptest.NewRecorder()

	h.Candidates(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
