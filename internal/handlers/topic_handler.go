package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"linguaquest/internal/service"
)

// TopicHandler handles topic catalog HTTP requests
type TopicHandler struct {
	topics *service.TopicService
	logger *zap.Logger
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(topics *service.TopicService, logger *zap.Logger) *TopicHandler {
	return &TopicHandler{topics: topics, logger: logger}
}

// List handles GET /api/topics
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.ListTopics()
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp := make([]topicResponse, 0, len(topics))
	for _, topic := range topics {
		resp = append(resp, topicResponse{ID: topic.ID, Name: topic.Name, Description: topic.Description})
	}

	respondJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/topics
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	topic, err := h.topics.CreateTopic(req.Name, req.Description)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, topicResponse{ID: topic.ID, Name: topic.Name, Description: topic.Description})
}
