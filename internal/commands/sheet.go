package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/models"
	"github.com/ganttline/ganttline/internal/resolver"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Manage sheets",
}

var sheetListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List sheets",
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		snap := store.Snapshot()
		for _, sheet := range snap.Sheets {
			marker := " "
			if sheet.ID == snap.ActiveSheetID {
				marker = "*"
			}
			fmt.Printf("%s %-30s %d tasks, %d columns\n", marker, sheet.Name, len(sheet.Tasks), len(sheet.CustomColumns))
		}
	}),
}

var sheetAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a sheet and switch to it",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		name := strings.TrimSpace(strings.Join(args, " "))
		sheet := models.Sheet{
			ID:            models.NewSheetID(),
			Name:          name,
			Tasks:         []models.Task{},
			CustomColumns: []models.CustomColumn{},
		}
		if err := store.Apply(models.CreateSheet{Sheet: sheet}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Created sheet %q\n", name)
	}),
}

var sheetRenameCmd = &cobra.Command{
	Use:   "rename [sheet] [new name]",
	Short: "Rename a sheet",
	Args:  cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		snap := store.Snapshot()
		sheet := resolver.Sheet(snap.Sheets, args[0])
		if sheet == nil {
			fmt.Printf("No sheet matching %q.\n", args[0])
			return
		}
		if err := store.Apply(models.RenameSheet{SheetID: sheet.ID, Name: args[1]}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Renamed sheet to %q\n", args[1])
	}),
}

var sheetSwitchCmd = &cobra.Command{
	Use:   "switch [sheet]",
	Short: "Switch the active sheet",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		snap := store.Snapshot()
		name := strings.Join(args, " ")
		sheet := resolver.Sheet(snap.Sheets, name)
		if sheet == nil {
			fmt.Printf("No sheet matching %q.\n", name)
			return
		}
		if err := store.Apply(models.SwitchSheet{SheetID: sheet.ID}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Switched to sheet %q\n", sheet.Name)
	}),
}

var sheetRmCmd = &cobra.Command{
	Use:   "rm [sheet]",
	Short: "Delete a sheet",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		snap := store.Snapshot()
		name := strings.Join(args, " ")
		sheet := resolver.Sheet(snap.Sheets, name)
		if sheet == nil {
			fmt.Printf("No sheet matching %q.\n", name)
			return
		}
		deleted := sheet.Name
		if err := store.Apply(models.DeleteSheet{SheetID: sheet.ID}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted sheet %q\n", deleted)
	}),
}

func init() {
	sheetCmd.AddCommand(sheetListCmd)
	sheetCmd.AddCommand(sheetAddCmd)
	sheetCmd.AddCommand(sheetRenameCmd)
	sheetCmd.AddCommand(sheetSwitchCmd)
	sheetCmd.AddCommand(sheetRmCmd)
}
