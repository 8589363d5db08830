package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks in the active sheet",
	Run: withStore(func(cmd *cobra.Command, args []string, store *document.Store) {
		sheet := store.ActiveSheet()
		if sheet == nil {
			fmt.Println("No active sheet.")
			return
		}

		fmt.Printf("Sheet: %s\n", sheet.Name)
		if len(sheet.Tasks) == 0 {
			fmt.Println("No tasks yet. Use 'ganttline add \"task name\"' or 'ganttline ask ...' to create one.")
			return
		}

		// Header: fixed fields plus one column per custom column
		header := fmt.Sprintf("%-38s %-10s %-12s %-12s %-5s %-12s", "TASK", "STATUS", "START", "END", "PROG", "OWNER")
		for _, col := range sheet.CustomColumns {
			header += fmt.Sprintf(" %-12s", strings.ToUpper(col.Name))
		}
		fmt.Println(header)
		fmt.Println(strings.Repeat("-", len(header)))

		for _, task := range sheet.Tasks {
			name := task.Name
			if len(name) > 36 {
				name = name[:33] + "..."
			}
			status := task.Status
			if status == "" {
				status = models.StatusPlanned
			}
			row := fmt.Sprintf("%-38s %-10s %-12s %-12s %3d%% %-12s",
				name, status, task.StartDate, task.EndDate, task.Progress, task.Owner)
			for _, col := range sheet.CustomColumns {
				row += fmt.Sprintf(" %-12s", task.Custom[models.CustomFieldKey(col.ID)])
			}
			fmt.Println(row)
		}
	}),
}
