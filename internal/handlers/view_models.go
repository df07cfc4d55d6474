package handlers

import (
	"time"

	"linguaquest/internal/models"
	"linguaquest/internal/service"
)

type wordResponse struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Translation  string `json:"translation"`
	Example      string `json:"example,omitempty"`
	Topic        string `json:"topic"`
	Level        string `json:"level"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
}

func toWordResponse(w models.Word) wordResponse {
	return wordResponse{
		ID:           w.ID,
		Text:         w.Text,
		Translation:  w.Translation,
		Example:      w.Example,
		Topic:        w.Topic,
		Level:        string(w.Level),
		PartOfSpeech: w.PartOfSpeech,
	}
}

type taskWordResponse struct {
	wordResponse
	Completed bool `json:"completed"`
	Score     int  `json:"score"`
	Attempts  int  `json:"attempts"`
}

type taskResponse struct {
	ID          int64              `json:"id"`
	Topic       string             `json:"topic"`
	Level       int                `json:"level"`
	Type        string             `json:"type"`
	Score       int                `json:"score"`
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	DurationSec *int               `json:"duration_sec,omitempty"`
	Reused      bool               `json:"reused,omitempty"`
	Words       []taskWordResponse `json:"words,omitempty"`
}

func toTaskResponse(detail *service.TaskDetail, reused bool) taskResponse {
	resp := taskResponse{
		ID:          detail.Task.ID,
		Topic:       detail.Task.Topic,
		Level:       detail.Task.Level,
		Type:        string(detail.Task.Type),
		Score:       detail.Task.Score,
		StartedAt:   detail.Task.StartedAt,
		CompletedAt: detail.Task.CompletedAt,
		DurationSec: detail.Task.DurationSec,
		Reused:      reused,
	}
	for _, tw := range detail.Words {
		resp.Words = append(resp.Words, taskWordResponse{
			wordResponse: toWordResponse(tw.Word),
			Completed:    tw.Completed,
			Score:        tw.Score,
			Attempts:     tw.Attempts,
		})
	}
	return resp
}

type topicResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Level string `json:"level"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Level: string(u.Level)}
}
