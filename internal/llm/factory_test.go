package llm

import (
	"strings"
	"testing"
)

func TestNewAdapterRejectsBadFormat(t *testing.T) {
	if _, err := NewAdapter("gpt-4o-mini", "key", ""); err == nil {
		t.Fatal("expected error for missing provider prefix")
	}
}

func TestNewAdapterRejectsUnknownProvider(t *testing.T) {
	_, err := NewAdapter("anthropic:claude", "key", "")
	if err == nil || !strings.Contains(err.Error(), "unsupported provider") {
		t.Fatalf("err = %v", err)
	}
}

func TestNewAdapterOpenAI(t *testing.T) {
	adapter, err := NewAdapter("openai:gpt-4o-mini", "sk-test", "")
	if err != nil {
		t.Fatal(err)
	}
	if adapter.ModelName() != "gpt-4o-mini" {
		t.Fatalf("model = %q", adapter.ModelName())
	}
	if !adapter.IsAvailable() {
		t.Fatal("keyed adapter must report available")
	}
}

func TestNewAdapterOpenAIFallsBackToEnvKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	adapter, err := NewAdapter("openai:gpt-4o-mini", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if !adapter.IsAvailable() {
		t.Fatal("env key must make the adapter available")
	}
}

func TestNewAdapterOpenAIWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewAdapter("openai:gpt-4o-mini", "", ""); err == nil {
		t.Fatal("expected error without a key")
	}
}

func TestNewAdapterOllamaNeedsNoKey(t *testing.T) {
	adapter, err := NewAdapter("ollama:llama3", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if !adapter.IsAvailable() {
		t.Fatal("ollama adapter must always be available")
	}
	if adapter.ModelName() != "llama3" {
		t.Fatalf("model = %q", adapter.ModelName())
	}
}
