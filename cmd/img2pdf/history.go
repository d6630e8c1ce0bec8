// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/img2pdf/internal/convert"
	"github.com/pdiddy/img2pdf/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or clear past conversion runs",
	Long: `History shows conversion runs recorded in a local SQLite database,
newest first. Use --clear to delete all recorded runs. The database
lives under the user config directory unless history.path is set in the
config file.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum runs to list")
	historyCmd.Flags().Bool("clear", false, "delete all recorded runs")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := viper.GetString("history.path")
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return err
		}
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		n, err := store.Clear(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d recorded runs.\n", n)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(runs, jsonOutput)
}

func formatHistoryOutput(runs []history.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-16s  %-30s  %-5s  %-6s  %-9s  %s\n",
		"ID", "When", "Folder", "Pages", "Failed", "Size", "Engine")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, r := range runs {
		folder := r.Folder
		if len(folder) > 30 {
			folder = "..." + folder[len(folder)-27:]
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-16s  %-30s  %-5d  %-6d  %-9s  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), folder,
			r.Pages, r.Failed, convert.FormatSize(r.Bytes), r.Engine)
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}
