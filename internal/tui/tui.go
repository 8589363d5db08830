package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ganttline/ganttline/internal/assistant"
	"github.com/ganttline/ganttline/internal/document"
)

// RunSession starts the interactive assistant session
func RunSession(store *document.Store, interp *assistant.Interpreter) error {
	model := NewSessionModel(store, interp)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
