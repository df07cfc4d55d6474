package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"linguaquest/internal/apperr"
	"linguaquest/internal/models"
	"linguaquest/internal/service"
)

// WordHandler handles word supply HTTP requests
type WordHandler struct {
	vocab  *service.VocabService
	logger *zap.Logger
}

// NewWordHandler creates a new word handler
func NewWordHandler(vocab *service.VocabService, logger *zap.Logger) *WordHandler {
	return &WordHandler{vocab: vocab, logger: logger}
}

// GetWords handles GET /api/words/{topic}/{level}. It returns a fresh word
// set for the user without creating a task; starting a task is what
// records the words as seen.
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		respondError(w, h.logger, errUnauthenticated)
		return
	}

	topic := r.PathValue("topic")
	level, ok := models.ParseLevel(r.PathValue("level"))
	if !ok {
		respondError(w, h.logger, apperr.Validation("level", "level must be beginner, intermediate or advanced"))
		return
	}

	words, err := h.vocab.SupplyWords(r.Context(), userID, topic, level)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp := make([]wordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, toWordResponse(word))
	}

	respondJSON(w, http.StatusOK, resp)
}
