package llm

import (
	"fmt"
	"os"
	"strings"
)

// NewAdapter creates an adapter from a "provider:model" string
func NewAdapter(modelStr, apiKey, baseURL string) (Adapter, error) {
	parts := strings.SplitN(modelStr, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid model format: %s (expected provider:model)", modelStr)
	}

	provider := parts[0]
	model := parts[1]

	config := AdapterConfig{
		Model:   model,
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: DefaultTimeout,
	}

	switch provider {
	case "openai":
		if config.APIKey == "" {
			config.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if config.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not provided (set OPENAI_API_KEY or ganttline config api_key)")
		}
		return NewOpenAIAdapter(config), nil

	case "ollama":
		return NewOllamaAdapter(config), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s (supported: openai, ollama)", provider)
	}
}
