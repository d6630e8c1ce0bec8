// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf serializes canonical pages into a single multi-page PDF.
// Two interchangeable backends implement the same contract; both expect
// pages already normalized to alpha-free grayscale or RGB.
// Implements: prd004-encoding (R1-R4);
//
//	docs/ARCHITECTURE § PDF Encoding.
package pdf

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// Options carries the encoding hints shared by all backends.
type Options struct {
	// DPI sizes pages from pixel dimensions: points = pixels * 72 / DPI.
	DPI int

	// Quality is the JPEG quality for embedded page images (1-100).
	Quality int
}

func (o Options) withDefaults() Options {
	if o.DPI <= 0 {
		o.DPI = types.DefaultDPI
	}
	if o.Quality <= 0 {
		o.Quality = types.DefaultQuality
	}
	return o
}

// Encoder writes an ordered page sequence to one PDF file.
type Encoder interface {
	// Name identifies the backend in logs and run history.
	Name() string

	// Encode writes pages to outPath in order, one PDF page per image.
	Encode(outPath string, pages []*types.Page, opts Options) error
}

// New returns the encoder backend for engine.
func New(engine types.Engine) (Encoder, error) {
	switch engine {
	case types.EnginePDFCPU, "":
		return &pdfcpuEncoder{}, nil
	case types.EngineGofpdf:
		return &gofpdfEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q: use %s or %s",
			engine, types.EnginePDFCPU, types.EngineGofpdf)
	}
}

// encodeJPEG serializes one page as a JPEG payload. Grayscale pages
// yield grayscale JPEG, RGB pages color JPEG.
func encodeJPEG(p *types.Page, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, p.Image, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding %s as JPEG: %w", p.Source, err)
	}
	return buf.Bytes(), nil
}

// pagePoints converts a pixel dimension to PDF points at the given DPI.
func pagePoints(px, dpi int) float64 {
	return float64(px) * 72.0 / float64(dpi)
}
