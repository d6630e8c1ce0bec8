// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/img2pdf/internal/convert"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <folder>",
	Short: "Preview page order and image details without writing a PDF",
	Long: `Inspect lists the supported images in a folder in the order convert
would place them, with the format, file size, pixel dimensions, and the
color mode each page would be normalized to. Only image headers are
read; nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	entries, err := convert.Inspect(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatInspectOutput(entries, jsonOutput)
}

func formatInspectOutput(entries []convert.InspectEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Printf("No supported image files found (supported: %s).\n", convert.FormatsHint)
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-6s  %-11s  %-4s  %s\n",
		"Page", "Name", "Format", "Dimensions", "Mode", "Size")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))

	for _, e := range entries {
		name := e.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		if e.Error != "" {
			fmt.Fprintf(os.Stdout, "%-4d  %-40s  unreadable: %s\n", e.Index, name, e.Error)
			continue
		}

		dims := fmt.Sprintf("%dx%d", e.Width, e.Height)
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-6s  %-11s  %-4s  %s\n",
			e.Index, name, e.Format, dims, e.Mode, convert.FormatSize(e.Bytes))
	}

	fmt.Fprintf(os.Stdout, "\n%d files\n", len(entries))
	return nil
}
