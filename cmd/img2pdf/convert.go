// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/img2pdf/internal/convert"
	"github.com/pdiddy/img2pdf/internal/history"
	"github.com/pdiddy/img2pdf/internal/logging"
	"github.com/pdiddy/img2pdf/internal/pdf"
	"github.com/pdiddy/img2pdf/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <folder>",
	Short: "Convert all images in a folder to a single PDF",
	Long: `Convert scans a folder (top level only) for supported image files,
orders them naturally (img1, img2, ..., img10), normalizes each one to
an alpha-free grayscale or RGB page, and writes a single multi-page PDF.

Files that cannot be decoded are skipped with a warning; the run still
succeeds as long as at least one page is produced. Supported formats:
` + convert.FormatsHint + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", types.DefaultOutput, "output PDF path")
	convertCmd.Flags().BoolP("verbose", "v", false, "print environment diagnostics and debug detail")
	convertCmd.Flags().String("engine", string(types.EnginePDFCPU), "PDF encoder backend: pdfcpu or gofpdf")
	convertCmd.Flags().Int("dpi", types.DefaultDPI, "resolution hint used to size PDF pages")
	convertCmd.Flags().Int("quality", types.DefaultQuality, "JPEG quality for embedded pages (1-100)")
	convertCmd.Flags().Bool("validate", false, "check the structure of the produced PDF")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	folder := args[0]
	output := stringSetting(cmd, "output", "convert.output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	engine, err := types.ParseEngine(stringSetting(cmd, "engine", "convert.engine"))
	if err != nil {
		return err
	}

	cfg := types.ConvertConfig{
		Engine:   engine,
		DPI:      intSetting(cmd, "dpi", "convert.dpi"),
		Quality:  intSetting(cmd, "quality", "convert.quality"),
		Validate: boolSetting(cmd, "validate", "convert.validate"),
	}

	enc, err := pdf.New(cfg.Engine)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, verbose)
	printBanner(folder, output, verbose)

	start := time.Now()
	result, err := convert.Run(folder, output, cfg, enc, os.Stdout)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Debug("encode complete",
		"engine", enc.Name(),
		"pages", result.Converted(),
		"skipped", result.Failed(),
		"bytes", result.Bytes,
		"duration", elapsed.Round(time.Millisecond))

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		rep := result.Report(folder, output, cfg, elapsed)
		if err := convert.WriteReport(reportPath, rep); err != nil {
			logger.Warn("could not write run report", "path", reportPath, "error", err)
		} else {
			fmt.Printf("Run report written to %s\n", reportPath)
		}
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if !noHistory && viper.GetBool("history.enabled") {
		recordRun(logger, history.Run{
			Folder:   folder,
			Output:   output,
			Engine:   cfg.WithDefaults().Engine,
			Pages:    result.Converted(),
			Failed:   result.Failed(),
			Bytes:    result.Bytes,
			Duration: elapsed,
		})
	}

	fmt.Println("\nConversion completed successfully.")
	return nil
}

// printBanner frames the run the way the rest of the output reads:
// resolved paths first, environment details only when asked for.
func printBanner(folder, output string, verbose bool) {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		absFolder = folder
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		absOutput = output
	}

	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println("Image to PDF Converter")
	fmt.Println(rule)
	fmt.Printf("Input folder:  %s\n", absFolder)
	fmt.Printf("Output PDF:    %s\n", absOutput)
	fmt.Println(strings.Repeat("-", 60))

	if verbose {
		wd, _ := os.Getwd()
		fmt.Printf("Go version:        %s\n", runtime.Version())
		fmt.Printf("Operating system:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("Working directory: %s\n", wd)
		fmt.Println(strings.Repeat("-", 60))
	}
}

// recordRun appends the run to the history database. History is an
// after-the-fact convenience: failures here warn instead of failing a
// conversion that already succeeded.
func recordRun(logger *charmlog.Logger, run history.Run) {
	path := viper.GetString("history.path")
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			logger.Warn("history disabled", "error", err)
			return
		}
	}

	store, err := history.Open(path)
	if err != nil {
		logger.Warn("could not open history database", "path", path, "error", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), run); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
