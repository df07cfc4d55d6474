package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GenerationRequest describes a batch of vocabulary to produce.
type GenerationRequest struct {
	Topic        string
	Level        string
	Count        int
	ExcludeWords []string
}

// GeneratedWord is one candidate word returned by the content generator.
// Candidates are untrusted until validated and deduplicated by the caller.
type GeneratedWord struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Example     string `json:"example"`
}

// ContentGenerator produces new vocabulary for a topic and level.
type ContentGenerator interface {
	GenerateWords(ctx context.Context, req GenerationRequest) ([]GeneratedWord, error)
}

// OpenAIGenerator calls an OpenAI-compatible chat completions endpoint.
type OpenAIGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAIGenerator creates a generator client. The timeout bounds the
// whole request; a slow upstream must not stall task creation.
func NewOpenAIGenerator(apiKey, baseURL, model string, timeout time.Duration) *OpenAIGenerator {
	return &OpenAIGenerator{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateWords requests a batch of new vocabulary and parses the model's
// JSON reply. The exclusion list is advisory only; the caller still owns
// deduplication.
func (g *OpenAIGenerator) GenerateWords(ctx context.Context, req GenerationRequest) ([]GeneratedWord, error) {
	request := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		Temperature: 0.7,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generator returned status %d", resp.StatusCode)
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if response.Error != nil {
		return nil, fmt.Errorf("generator API error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no response choices returned")
	}

	words, err := parseWords(response.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated words: %w", err)
	}

	return words, nil
}

const systemPrompt = "You are a vocabulary author for an English learning app. " +
	"You reply with JSON only: a single array of objects with the keys " +
	"\"word\", \"translation\" and \"example\". The word is English, the " +
	"translation is Russian, the example is a short English sentence using the word."

func buildPrompt(req GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d English words for the topic %q at %s level.", req.Count, req.Topic, req.Level)
	if len(req.ExcludeWords) > 0 {
		fmt.Fprintf(&b, " Do not use any of these words: %s.", strings.Join(req.ExcludeWords, ", "))
	}
	b.WriteString(" Reply with the JSON array only.")
	return b.String()
}

// parseWords extracts the JSON array from the model's reply. Models often
// wrap JSON in a fenced code block despite instructions, so the fence is
// stripped before unmarshaling.
func parseWords(content string) ([]GeneratedWord, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var words []GeneratedWord
	if err := json.Unmarshal([]byte(content), &words); err != nil {
		return nil, err
	}

	return words, nil
}
