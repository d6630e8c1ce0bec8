// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// pdfcpuEncoder drives pdfcpu's image import. Every JPEG payload becomes
// one page sized from its pixel dimensions at the configured DPI.
type pdfcpuEncoder struct{}

func (e *pdfcpuEncoder) Name() string { return string(types.EnginePDFCPU) }

func (e *pdfcpuEncoder) Encode(outPath string, pages []*types.Page, opts Options) error {
	opts = opts.withDefaults()
	if len(pages) == 0 {
		return fmt.Errorf("no pages to encode")
	}

	readers := make([]io.Reader, 0, len(pages))
	for _, p := range pages {
		data, err := encodeJPEG(p, opts.Quality)
		if err != nil {
			return err
		}
		readers = append(readers, bytes.NewReader(data))
	}

	imp, err := api.Import(fmt.Sprintf("dpi:%d", opts.DPI), pdftypes.POINTS)
	if err != nil {
		return fmt.Errorf("building import config: %w", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	if err := api.ImportImages(nil, f, readers, imp, newConfiguration()); err != nil {
		f.Close()
		return fmt.Errorf("importing pages: %w", err)
	}
	return f.Close()
}

func newConfiguration() *model.Configuration {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return cfg
}

// Validate checks the structural integrity of a PDF file. It accepts
// output from any backend.
func Validate(path string) error {
	if err := api.ValidateFile(path, newConfiguration()); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	return nil
}

// PageCount returns the number of pages in a PDF file.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages in %s: %w", path, err)
	}
	return n, nil
}
