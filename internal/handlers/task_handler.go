package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"linguaquest/internal/apperr"
	"linguaquest/internal/models"
	"linguaquest/internal/service"
)

// TaskHandler handles task lifecycle HTTP requests
type TaskHandler struct {
	tasks  *service.TaskService
	logger *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger}
}

func taskIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validation("id", "invalid task id")
	}
	return id, nil
}

// Start handles POST /api/tasks/start
func (h *TaskHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		respondError(w, h.logger, errUnauthenticated)
		return
	}

	var req struct {
		Topic string `json:"topic"`
		Level int    `json:"level"`
		Type  string `json:"type"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	detail, reused, err := h.tasks.StartTask(r.Context(), userID, req.Topic, req.Level, models.TaskType(req.Type))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	status := http.StatusCreated
	if reused {
		status = http.StatusOK
	}
	respondJSON(w, status, toTaskResponse(detail, reused))
}

// AddWords handles POST /api/tasks/{id}/words
func (h *TaskHandler) AddWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		respondError(w, h.logger, errUnauthenticated)
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req struct {
		WordIDs []string `json:"word_ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	detail, err := h.tasks.AddWords(r.Context(), taskID, userID, req.WordIDs)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toTaskResponse(detail, false))
}

// Complete handles POST /api/tasks/{id}/complete
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		respondError(w, h.logger, errUnauthenticated)
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	var req struct {
		Score       int  `json:"score"`
		DurationSec *int `json:"duration_sec"`
		Words       []struct {
			WordID string `json:"word_id"`
			Score  int    `json:"score"`
		} `json:"words"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	results := make([]service.WordResult, 0, len(req.Words))
	for _, word := range req.Words {
		results = append(results, service.WordResult{WordID: word.WordID, Score: word.Score})
	}

	completion, err := h.tasks.CompleteTask(r.Context(), taskID, userID, req.Score, req.DurationSec, results)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Task   taskResponse `json:"task"`
		Passed bool         `json:"passed"`
	}{
		Task:   toTaskResponse(&service.TaskDetail{Task: completion.Task}, false),
		Passed: completion.Passed,
	})
}

// List handles GET /api/tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		respondError(w, h.logger, errUnauthenticated)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, h.logger, apperr.Validation("limit", "limit must be a number"))
			return
		}
		limit = parsed
	}

	tasks, err := h.tasks.ListTasks(userID, limit)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, toTaskResponse(&service.TaskDetail{Task: task}, false))
	}

	respondJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		respondError(w, h.logger, errUnauthenticated)
		return
	}

	taskID, err := taskIDFromPath(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	detail, err := h.tasks.GetTask(taskID, userID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toTaskResponse(detail, false))
}
