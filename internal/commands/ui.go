package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/assistant"
	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive session",
	Long: `Open a full-screen session with the task grid, sheet tabs and the
assistant prompt. Every command typed at the prompt is interpreted and
applied immediately; the document is saved when the session ends.`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		interp := assistant.New(newAdapter())
		if err := tui.RunSession(store, interp); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
