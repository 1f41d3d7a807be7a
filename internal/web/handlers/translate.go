package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fsantini/lishgreek/internal/translit"
)

// maxTextLength caps request payloads; the engine is O(length) per
// word but there is no reason to accept whole books over one call.
const maxTextLength = 1 << 16

type TranslateHandler struct {
	translator *translit.Translator
	log        *slog.Logger
}

func NewTranslateHandler(translator *translit.Translator, log *slog.Logger) *TranslateHandler {
	return &TranslateHandler{translator: translator, log: log}
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Text       string `json:"text"`
	Translated string `json:"translated"`
}

// Translate handles POST /api/v1/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTextLength)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Text:       req.Text,
		Translated: h.translator.Translate(req.Text),
	})
}

type candidatesResponse struct {
	Word       string   `json:"word"`
	Keys       []string `json:"keys"`
	Candidates []string `json:"candidates"`
}

// Candidates handles GET /api/v1/candidates?word=... and exposes the
// ranked homophone list for one word, mainly for debugging spelling
// conventions.
func (h *TranslateHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word query parameter is required")
		return
	}
	writeJSON(w, http.StatusOK, candidatesResponse{
		Word:       word,
		Keys:       h.translator.Keys(word),
		Candidates: h.translator.Candidates(word),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
