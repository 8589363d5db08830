package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaAdapter implements Adapter for a local Ollama server
type OllamaAdapter struct {
	client  *http.Client
	config  AdapterConfig
	baseURL string
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(config AdapterConfig) *OllamaAdapter {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &OllamaAdapter{
		client:  &http.Client{Timeout: config.Timeout},
		config:  config,
		baseURL: baseURL,
	}
}

// Send implements Adapter.Send
func (o *OllamaAdapter) Send(ctx context.Context, messages []Message) (*Message, error) {
	ollamaMessages := make([]ollamaMessage, len(messages))
	for i, msg := range messages {
		ollamaMessages[i] = ollamaMessage{Role: msg.Role, Content: msg.Content}
	}

	request := ollamaChatRequest{
		Model:    o.config.Model,
		Messages: ollamaMessages,
		Stream:   false,
		Format:   "json",
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/chat", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Ollama API error (%d): %s", resp.StatusCode, string(body))
	}

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &Message{
		Role:    chatResp.Message.Role,
		Content: chatResp.Message.Content,
	}, nil
}

// ModelName implements Adapter.ModelName
func (o *OllamaAdapter) ModelName() string {
	return o.config.Model
}

// IsAvailable implements Adapter.IsAvailable. Ollama needs no API key.
func (o *OllamaAdapter) IsAvailable() bool {
	return true
}
