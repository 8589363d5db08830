package llm

import (
	"context"
	"time"
)

// Message roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Adapter defines the interface for chat-completion providers
type Adapter interface {
	// Send sends messages and returns the complete response
	Send(ctx context.Context, messages []Message) (*Message, error)

	// ModelName returns the current model name
	ModelName() string

	// IsAvailable checks if the adapter is properly configured
	IsAvailable() bool
}

// AdapterConfig contains common configuration for adapters
type AdapterConfig struct {
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultTimeout for completion requests
const DefaultTimeout = 30 * time.Second
