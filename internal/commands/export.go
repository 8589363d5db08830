package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/db"
	"github.com/ganttline/ganttline/internal/document"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the document to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		path := "ganttline.json"
		if len(args) > 0 {
			path = args[0]
		}
		if err := document.ExportFile(store.Snapshot(), path); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Exported document to %s\n", path)
	}),
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the document with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		snap, err := document.ImportFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		store, err := setup()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer db.Close()

		store.Replace(snap)
		persist(store)
		fmt.Printf("Imported %d sheets from %s\n", len(snap.Sheets), args[0])
	},
}
