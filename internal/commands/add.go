package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/dates"
	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add [task name]",
	Short: "Add a task to the active sheet",
	Long: `Add a task directly, without going through the assistant.

Dates accept the same loose formats the assistant understands
("tomorrow", "Jan 15", "2025-03-01"); missing dates default to a
one-week window starting today.`,
	Args: cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		name := strings.TrimSpace(strings.Join(args, " "))
		if len(name) < 2 {
			fmt.Println("Error: task name must be at least 2 characters")
			return
		}

		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		owner, _ := cmd.Flags().GetString("owner")

		startDate := dates.Format(dates.Today())
		if start != "" {
			startDate = dates.Normalize(start)
		}
		endDate := dates.AddDays(startDate, 7)
		if end != "" {
			endDate = dates.Normalize(end)
		}
		if dates.Before(endDate, startDate) {
			endDate = dates.AddDays(startDate, 7)
		}

		task := models.Task{
			ID:        models.NewTaskID(),
			Name:      name,
			StartDate: startDate,
			EndDate:   endDate,
			Status:    models.StatusPlanned,
			Progress:  0,
			Owner:     owner,
		}

		if err := store.Apply(models.AddTask{Task: task}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Created task %q (%s to %s)\n", task.Name, task.StartDate, task.EndDate)
		if task.Owner != "" {
			fmt.Printf("  Owner: %s\n", task.Owner)
		}
	}),
}

func init() {
	addCmd.Flags().StringP("start", "s", "", "Start date")
	addCmd.Flags().StringP("end", "e", "", "End date")
	addCmd.Flags().StringP("owner", "o", "", "Task owner")
}
