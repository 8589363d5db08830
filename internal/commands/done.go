package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/models"
	"github.com/ganttline/ganttline/internal/resolver"
)

// findTask locates a task in the active sheet by id or fuzzy name
func findTask(store *document.Store, ref string) *models.Task {
	sheet := store.ActiveSheet()
	if sheet == nil {
		return nil
	}
	if task := sheet.TaskByID(ref); task != nil {
		return task
	}
	return resolver.Task(sheet.Tasks, ref)
}

var startCmd = &cobra.Command{
	Use:   "start [task]",
	Short: "Mark a task as ongoing",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		ref := strings.Join(args, " ")
		task := findTask(store, ref)
		if task == nil {
			fmt.Printf("No task matching %q in the active sheet.\n", ref)
			return
		}

		progress := task.Progress
		if progress == 0 {
			progress = 10
		}
		action := models.UpdateTask{
			SheetID: store.Snapshot().ActiveSheetID,
			TaskID:  task.ID,
			Updates: map[string]any{"status": models.StatusOngoing, "progress": progress},
		}
		if err := store.Apply(action); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Marked %q as ongoing (%d%%)\n", task.Name, progress)
	}),
}

var doneCmd = &cobra.Command{
	Use:   "done [task]",
	Short: "Mark a task as completed",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		ref := strings.Join(args, " ")
		task := findTask(store, ref)
		if task == nil {
			fmt.Printf("No task matching %q in the active sheet.\n", ref)
			return
		}

		action := models.UpdateTask{
			SheetID: store.Snapshot().ActiveSheetID,
			TaskID:  task.ID,
			Updates: map[string]any{"status": models.StatusCompleted, "progress": 100},
		}
		if err := store.Apply(action); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Marked %q as completed\n", task.Name)
	}),
}

var rmCmd = &cobra.Command{
	Use:   "rm [task]",
	Short: "Delete a task from the active sheet",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		ref := strings.Join(args, " ")
		task := findTask(store, ref)
		if task == nil {
			fmt.Printf("No task matching %q in the active sheet.\n", ref)
			return
		}

		name := task.Name
		action := models.DeleteTask{
			SheetID: store.Snapshot().ActiveSheetID,
			TaskID:  task.ID,
		}
		if err := store.Apply(action); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted task %q\n", name)
	}),
}
