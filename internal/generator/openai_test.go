package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatReply(t *testing.T, content string) []byte {
	t.Helper()

	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	body, err := json.Marshal(reply)
	require.NoError(t, err)
	return body
}

func TestGenerateWords(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write(chatReply(t, `[{"word":"itinerary","translation":"маршрут","example":"Our itinerary includes Rome."}]`))
	}))
	defer server.Close()

	g := NewOpenAIGenerator("test-key", server.URL, "gpt-4o-mini", 5*time.Second)
	words, err := g.GenerateWords(context.Background(), GenerationRequest{
		Topic:        "Travel",
		Level:        "intermediate",
		Count:        6,
		ExcludeWords: []string{"visa", "passport"},
	})
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "itinerary", words[0].Word)
	assert.Equal(t, "маршрут", words[0].Translation)

	require.Len(t, captured.Messages, 2)
	prompt := captured.Messages[1].Content
	assert.Contains(t, prompt, "Travel")
	assert.Contains(t, prompt, "visa, passport")
	assert.Equal(t, "gpt-4o-mini", captured.Model)
}

func TestGenerateWordsStripsCodeFence(t *testing.T) {
	fenced := "```json\n[{\"word\":\"luggage\",\"translation\":\"багаж\",\"example\":\"The luggage was lost.\"}]\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, fenced))
	}))
	defer server.Close()

	g := NewOpenAIGenerator("test-key", server.URL, "gpt-4o-mini", 5*time.Second)
	words, err := g.GenerateWords(context.Background(), GenerationRequest{Topic: "Travel", Level: "beginner", Count: 6})
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "luggage", words[0].Word)
}

func TestGenerateWordsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewOpenAIGenerator("test-key", server.URL, "gpt-4o-mini", 5*time.Second)
	_, err := g.GenerateWords(context.Background(), GenerationRequest{Topic: "Travel", Level: "beginner", Count: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGenerateWordsMalformedReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, "Sure! Here are some words for you."))
	}))
	defer server.Close()

	g := NewOpenAIGenerator("test-key", server.URL, "gpt-4o-mini", 5*time.Second)
	_, err := g.GenerateWords(context.Background(), GenerationRequest{Topic: "Travel", Level: "beginner", Count: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse generated words")
}

func TestGenerateWordsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	g := NewOpenAIGenerator("test-key", server.URL, "gpt-4o-mini", 5*time.Second)
	_, err := g.GenerateWords(ctx, GenerationRequest{Topic: "Travel", Level: "beginner", Count: 6})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context deadline exceeded") ||
		strings.Contains(err.Error(), "Client.Timeout"))
}
