// Package llm talks to the OpenRouter chat-completions API and turns
// responses into commit message candidates.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/comet-cli/comet/internal/prompt"
)

// DefaultEndpoint is the chat-completions URL requests are POSTed to.
const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// ChatMessage is one turn of the conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request payload. Always exactly two messages: the
// fixed system instruction and the user prompt.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// ComposeRequest builds the request payload for one generation.
func ComposeRequest(model, userPrompt string) ChatRequest {
	return ChatRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: "system", Content: prompt.SystemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
}

// Client performs chat-completion requests. One outbound call per
// invocation; no retries, no cancellation once sent.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient returns a client for the default endpoint.
func NewClient() *Client {
	return &Client{
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
	}
}

// NewClientWithEndpoint returns a client for a custom endpoint.
func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
	}
}

// Generate sends the request with bearer authorization and returns the
// generated text. Failures come back as *RequestError, *RawError or
// ErrModelWarmingUp; all are terminal for this invocation.
func (c *Client) Generate(ctx context.Context, apiKey string, payload ChatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyError(resp.StatusCode, data)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &RawError{Status: resp.StatusCode, Body: string(data)}
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrModelWarmingUp
	}

	return parsed.Choices[0].Message.Content, nil
}
