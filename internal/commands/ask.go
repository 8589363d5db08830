package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/assistant"
	"github.com/ganttline/ganttline/internal/document"
)

var askCmd = &cobra.Command{
	Use:   "ask [command text]",
	Short: "Tell the assistant what to do in plain language",
	Long: `Interpret a natural language command against the current document and
apply the resulting edit.

Examples:
  ganttline ask "Add task Build landing page from Jan 15 to Jan 25"
  ganttline ask "Mark Build landing page as ongoing"
  ganttline ask "create sheet called Marketing"
  ganttline ask "add column Priority"

With an API key configured (config api_key or OPENAI_API_KEY) the command is
interpreted by the model; otherwise a keyword parser handles the basics.`,
	Args: cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		input := strings.Join(args, " ")

		interp := assistant.New(newAdapter())
		snap := store.Snapshot()
		docCtx := assistant.ContextFromSnapshot(&snap)

		action := interp.Interpret(context.Background(), input, docCtx)
		if action == nil {
			fmt.Println("Nothing to do: the command didn't match any task, sheet or column.")
			return
		}

		if err := store.Apply(action); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Applied: %s\n", action.Describe())
	}),
}
