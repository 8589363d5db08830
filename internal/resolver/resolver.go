package resolver

import (
	"strings"

	"github.com/ganttline/ganttline/internal/models"
)

// Minimum token lengths for the token-overlap stage. Task names tend to be
// longer phrases, so tasks require bigger tokens than sheets and columns.
const (
	taskTokenMin  = 4
	sheetTokenMin = 3
)

// Sheet finds a sheet by free-form name. Matching stages, first hit wins:
// exact case-insensitive, substring either direction, then token overlap.
// Ties resolve by collection order.
func Sheet(sheets []models.Sheet, name string) *models.Sheet {
	idx := match(len(sheets), func(i int) string { return sheets[i].Name }, name, sheetTokenMin)
	if idx < 0 {
		return nil
	}
	return &sheets[idx]
}

// Column finds a custom column by free-form name. Columns skip the
// token-overlap stage: short names like "Priority" make token matching
// too loose.
func Column(columns []models.CustomColumn, name string) *models.CustomColumn {
	idx := match(len(columns), func(i int) string { return columns[i].Name }, name, 0)
	if idx < 0 {
		return nil
	}
	return &columns[idx]
}

// Task finds a task by free-form name
func Task(tasks []models.Task, name string) *models.Task {
	idx := match(len(tasks), func(i int) string { return tasks[i].Name }, name, taskTokenMin)
	if idx < 0 {
		return nil
	}
	return &tasks[idx]
}

// match runs the three-stage scan over candidate names. tokenMin of 0
// disables the token-overlap stage. Returns the candidate index or -1.
func match(n int, nameAt func(int) string, search string, tokenMin int) int {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" || n == 0 {
		return -1
	}

	// Stage 1: exact
	for i := 0; i < n; i++ {
		if strings.ToLower(nameAt(i)) == search {
			return i
		}
	}

	// Stage 2: substring containment either direction
	for i := 0; i < n; i++ {
		candidate := strings.ToLower(nameAt(i))
		if strings.Contains(candidate, search) || strings.Contains(search, candidate) {
			return i
		}
	}

	if tokenMin == 0 {
		return -1
	}

	// Stage 3: token overlap
	searchTokens := tokens(search, tokenMin)
	if len(searchTokens) == 0 {
		return -1
	}
	for i := 0; i < n; i++ {
		candTokens := strings.Fields(strings.ToLower(nameAt(i)))
		for _, st := range searchTokens {
			for _, ct := range candTokens {
				if strings.Contains(ct, st) || strings.Contains(st, ct) {
					return i
				}
			}
		}
	}

	return -1
}

func tokens(s string, min int) []string {
	var out []string
	for _, tok := range strings.Fields(s) {
		if len(tok) >= min {
			out = append(out, tok)
		}
	}
	return out
}
