// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates a conversion run: scan a folder for
// images, order them naturally, normalize each into a canonical page,
// and encode the collection as one multi-page PDF.
// Implements: prd001-conversion (R1-R6);
//
//	docs/ARCHITECTURE § Conversion Pipeline.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/img2pdf/internal/imaging"
	"github.com/pdiddy/img2pdf/internal/natsort"
	"github.com/pdiddy/img2pdf/internal/pdf"
	"github.com/pdiddy/img2pdf/pkg/types"
)

// imageExts is the fixed allow-list of input extensions, matched
// case-insensitively against top-level directory entries.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
	".gif":  true,
}

// FormatsHint names the supported formats for user-facing messages.
const FormatsHint = "JPG, JPEG, PNG, BMP, TIFF, TIF, WebP, GIF"

var (
	// ErrNoImages means the extension filter matched nothing in the folder.
	ErrNoImages = errors.New("no supported image files found")

	// ErrAllFailed means every candidate file failed to decode.
	ErrAllFailed = errors.New("no images could be processed")
)

// ListImages returns the names of supported image files directly inside
// folder, in natural order. Subdirectories are not descended into and
// only entries resolving to regular files are candidates; the match is
// by extension only, so a misnamed image surfaces later as a decode
// failure rather than being silently ignored.
func ListImages(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("folder %q does not exist", folder)
		}
		return nil, fmt.Errorf("reading folder %q: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder %q: %w", folder, err)
	}

	var names []string
	for _, entry := range entries {
		if !imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		// Stat follows symlinks, so a link to an image counts while a
		// directory, a link to one, or a broken link is skipped.
		info, err := os.Stat(filepath.Join(folder, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return natsort.Sorted(names), nil
}

// Result holds the outcome of one conversion run.
type Result struct {
	// Pages describes the encoded pages in document order.
	Pages []types.PageInfo

	// Failures lists the skipped inputs in scan order.
	Failures []types.Failure

	// Bytes is the size of the produced PDF file.
	Bytes int64
}

// Converted returns the number of pages in the output document.
func (r Result) Converted() int { return len(r.Pages) }

// Failed returns the number of inputs that were skipped.
func (r Result) Failed() int { return len(r.Failures) }

// HasFailures reports whether any input file was skipped.
func (r Result) HasFailures() bool { return len(r.Failures) > 0 }

// Run converts every supported image in folder into a single PDF at
// output, processing files strictly in natural order. A file that fails
// to decode is reported on w as a warning and skipped; the run itself
// fails only when the folder yields no candidates, no candidate
// decodes, or the final encode step fails. Missing parent directories
// of output are created.
func Run(folder, output string, cfg types.ConvertConfig, enc pdf.Encoder, w io.Writer) (Result, error) {
	cfg = cfg.WithDefaults()

	names, err := ListImages(folder)
	if err != nil {
		return Result{}, err
	}
	if len(names) == 0 {
		return Result{}, fmt.Errorf("%w in %q (supported: %s)", ErrNoImages, folder, FormatsHint)
	}

	fmt.Fprintf(w, "Found %d image files\n", len(names))

	var result Result
	var pages []*types.Page
	for i, name := range names {
		fmt.Fprintf(w, "processing %2d/%d: %s\n", i+1, len(names), name)

		page, err := imaging.DecodeFile(filepath.Join(folder, name))
		if err != nil {
			cause := decodeCause(err)
			fmt.Fprintf(w, "warning: could not process %s (%s)\n", name, cause)
			result.Failures = append(result.Failures, types.Failure{Source: name, Cause: cause})
			continue
		}

		pages = append(pages, page)
		result.Pages = append(result.Pages, types.PageInfo{
			Source: name,
			Mode:   page.Mode,
			Width:  page.Width,
			Height: page.Height,
		})
	}

	if len(pages) == 0 {
		return result, fmt.Errorf("%w: all %d candidate files failed", ErrAllFailed, len(names))
	}
	if result.HasFailures() {
		fmt.Fprintf(w, "skipped %d of %d files\n", result.Failed(), len(names))
	}

	if dir := filepath.Dir(output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	fmt.Fprintf(w, "\nSaving PDF: %s\n", output)
	opts := pdf.Options{DPI: cfg.DPI, Quality: cfg.Quality}
	if err := enc.Encode(output, pages, opts); err != nil {
		removePartial(output, w)
		return result, fmt.Errorf("creating PDF: %w", err)
	}

	if cfg.Validate {
		if err := pdf.Validate(output); err != nil {
			removePartial(output, w)
			return result, err
		}
	}

	if info, err := os.Stat(output); err == nil {
		result.Bytes = info.Size()
		fmt.Fprintf(w, "Successfully created %q (%s) with %d pages\n",
			output, FormatSize(result.Bytes), result.Converted())
	} else {
		fmt.Fprintf(w, "Successfully created %q with %d pages\n",
			output, result.Converted())
	}
	return result, nil
}

// decodeCause strips the path prefix a *DecodeError carries, since the
// caller already has the filename in hand.
func decodeCause(err error) string {
	var de *imaging.DecodeError
	if errors.As(err, &de) {
		return de.Err.Error()
	}
	return err.Error()
}

// removePartial deletes a half-written output file. Best effort: a
// failed run must not leave a truncated PDF that looks like a result.
func removePartial(output string, w io.Writer) {
	if err := os.Remove(output); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(w, "warning: could not remove partial output %s (%v)\n", output, err)
	}
}

// FormatSize renders a byte count the way humans read file sizes.
func FormatSize(n int64) string {
	if n >= 1<<20 {
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	}
	return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
}
