// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"

	"github.com/pdiddy/img2pdf/internal/imaging"
	"github.com/pdiddy/img2pdf/pkg/types"
)

// InspectEntry describes one candidate file in the order convert would
// place it. Entries whose header cannot be read keep their position and
// carry the error instead of dimensions, mirroring the warn-and-skip
// behavior of a real run.
// Implements: prd006-inspection R1-R3.
type InspectEntry struct {
	// Index is the 1-based page position the file would take.
	Index int `json:"index" yaml:"index"`

	// Name is the filename inside the inspected folder.
	Name string `json:"name" yaml:"name"`

	// Format is the detected image format, empty when probing failed.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Bytes is the file size on disk.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Width and Height are the pixel dimensions from the image header.
	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`

	// Mode is the canonical color mode normalization would produce.
	Mode types.ColorMode `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Error is the probe failure, empty for healthy files.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Inspect lists the supported images in folder in natural order with
// the details a run would use, reading only image headers.
func Inspect(folder string) ([]InspectEntry, error) {
	names, err := ListImages(folder)
	if err != nil {
		return nil, err
	}

	entries := make([]InspectEntry, len(names))
	for i, name := range names {
		entry := InspectEntry{Index: i + 1, Name: name}

		path := filepath.Join(folder, name)
		if info, err := os.Stat(path); err == nil {
			entry.Bytes = info.Size()
		}

		cfg, format, err := imaging.Probe(path)
		if err != nil {
			entry.Error = decodeCause(err)
		} else {
			entry.Format = format
			entry.Width = cfg.Width
			entry.Height = cfg.Height
			entry.Mode = imaging.ProbeMode(cfg.ColorModel)
		}
		entries[i] = entry
	}
	return entries, nil
}
