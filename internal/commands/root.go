package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganttline/ganttline/internal/config"
	"github.com/ganttline/ganttline/internal/db"
	"github.com/ganttline/ganttline/internal/document"
	"github.com/ganttline/ganttline/internal/llm"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ganttline",
	Short: "A project timeline editor with a natural-language assistant",
	Long: `ganttline is a terminal Gantt chart editor. Manage sheets of tasks and
custom columns directly, or tell the assistant what you want in plain
language and let it figure out the edit.`,
}

// setup loads config, opens the database and restores the saved document
func setup() (*document.Store, error) {
	c, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg = c

	if err := db.Initialize(c.DBPath); err != nil {
		return nil, err
	}

	snap, err := db.LoadSnapshot(c.User)
	if err != nil {
		return nil, err
	}
	return document.FromSnapshot(snap), nil
}

// persist writes the document back. Last write wins.
func persist(store *document.Store) {
	if err := db.SaveSnapshot(cfg.User, store.Snapshot()); err != nil {
		fmt.Printf("Warning: failed to save document: %v\n", err)
	}
}

// withStore wraps a command function with setup, teardown and save
func withStore(fn func(cmd *cobra.Command, args []string, store *document.Store)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		store, err := setup()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer db.Close()
		fn(cmd, args, store)
		persist(store)
	}
}

// newAdapter builds the configured completion adapter, or nil when none is
// usable (no key, bad model string). The assistant degrades to its
// heuristic parser in that case.
func newAdapter() llm.Adapter {
	adapter, err := llm.NewAdapter(cfg.Model, cfg.APIKey, cfg.BaseURL)
	if err != nil {
		return nil
	}
	return adapter
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ganttline %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(versionCmd)
}
