// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// Report assembles the YAML-ready record of a finished run (R6.1).
func (r Result) Report(folder, output string, cfg types.ConvertConfig, elapsed time.Duration) types.Report {
	cfg = cfg.WithDefaults()
	return types.Report{
		Folder:    folder,
		Output:    output,
		Engine:    cfg.Engine,
		DPI:       cfg.DPI,
		Quality:   cfg.Quality,
		Pages:     r.Pages,
		Failures:  r.Failures,
		Bytes:     r.Bytes,
		Duration:  elapsed,
		CreatedAt: time.Now().UTC(),
	}
}

// WriteReport writes a run report to path as YAML, creating missing
// parent directories (R6.2).
func WriteReport(path string, rep types.Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
