package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ganttline/ganttline/internal/llm"
	"github.com/ganttline/ganttline/internal/models"
)

// Interpreter turns free-form text plus a document snapshot into a typed
// Action. With an adapter configured it asks the model first; any network or
// parse failure falls back to the heuristic parser. It holds no state
// between invocations.
type Interpreter struct {
	adapter llm.Adapter
}

// New creates an interpreter. A nil adapter means heuristic-only.
func New(adapter llm.Adapter) *Interpreter {
	return &Interpreter{adapter: adapter}
}

// HasModel reports whether a completion adapter is configured
func (i *Interpreter) HasModel() bool {
	return i.adapter != nil && i.adapter.IsAvailable()
}

// Interpret produces an Action for the input, or nil when nothing actionable
// was recognized. It never returns an error to the caller: every failure
// degrades to the heuristic parser or to nil.
func (i *Interpreter) Interpret(ctx context.Context, input string, doc Context) models.Action {
	if i.HasModel() {
		if action, err := i.parseWithModel(ctx, input, doc); err == nil {
			return action
		}
	}
	return Normalize(parseHeuristic(input, doc), doc)
}

// parseWithModel issues one completion request and normalizes its JSON
// reply. A malformed reply is a hard error so the caller falls back.
func (i *Interpreter) parseWithModel(ctx context.Context, input string, doc Context) (models.Action, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt()},
		{Role: llm.RoleUser, Content: userPrompt(input, doc)},
	}

	reply, err := i.adapter.Send(ctx, messages)
	if err != nil {
		return nil, err
	}
	if reply.Content == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var raw RawAction
	if err := json.Unmarshal([]byte(reply.Content), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON from model: %w", err)
	}

	return Normalize(&raw, doc), nil
}
