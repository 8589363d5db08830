package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/models"
	"github.com/ganttline/ganttline/internal/resolver"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Manage custom columns on the active sheet",
}

var columnListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List custom columns",
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		sheet := store.ActiveSheet()
		if sheet == nil || len(sheet.CustomColumns) == 0 {
			fmt.Println("No custom columns on the active sheet.")
			return
		}
		for _, col := range sheet.CustomColumns {
			visibility := "visible"
			if !col.Visible {
				visibility = "hidden"
			}
			fmt.Printf("%-20s %s (%s)\n", col.Name, col.ID, visibility)
		}
	}),
}

var columnAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a custom column",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			fmt.Println("Error: column name is required")
			return
		}
		if err := store.Apply(models.AddColumn{Name: name}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added column %q\n", name)
	}),
}

var columnRmCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Delete a custom column",
	Long: `Delete a custom column from the active sheet. Values tasks already
hold for the column are kept, so re-adding a column with the same name
brings them back.`,
	Args: cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		sheet := store.ActiveSheet()
		if sheet == nil {
			fmt.Println("No active sheet.")
			return
		}
		name := strings.Join(args, " ")
		col := resolver.Column(sheet.CustomColumns, name)
		if col == nil {
			fmt.Printf("No column matching %q.\n", name)
			return
		}
		if err := store.Apply(models.DeleteColumn{ColumnID: col.ID}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted column %q\n", col.Name)
	}),
}

func init() {
	columnCmd.AddCommand(columnListCmd)
	columnCmd.AddCommand(columnAddCmd)
	columnCmd.AddCommand(columnRmCmd)
}
