// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imaging decodes image files and normalizes them into canonical
// alpha-free pages ready for PDF embedding.
// Implements: prd003-normalization (R1-R5);
//
//	docs/ARCHITECTURE § Image Normalization.
package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// DecodeError marks a single file that could not be read or decoded.
// Callers treat it as per-file: warn, skip, keep going.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode opens and decodes one image file. The file handle is closed
// before returning so no decoder resource outlives the call. Failures
// come back as a *DecodeError carrying the path.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	return img, format, nil
}

// Probe reads only the image header, returning its format name and
// dimensions without decoding pixel data.
func Probe(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, "", &DecodeError{Path: path, Err: err}
	}
	return cfg, format, nil
}

// DecodeFile decodes path and normalizes the result into a canonical
// page whose Source is the file's base name.
func DecodeFile(path string) (*types.Page, error) {
	img, _, err := Decode(path)
	if err != nil {
		return nil, err
	}

	page := Normalize(img)
	page.Source = filepath.Base(path)
	return page, nil
}
