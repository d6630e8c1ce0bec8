// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// gofpdfEncoder composes the document page by page: each image gets a
// page of exactly its size in points with the JPEG payload drawn
// full-bleed at the origin.
type gofpdfEncoder struct{}

func (e *gofpdfEncoder) Name() string { return string(types.EngineGofpdf) }

func (e *gofpdfEncoder) Encode(outPath string, pages []*types.Page, opts Options) error {
	opts = opts.withDefaults()
	if len(pages) == 0 {
		return fmt.Errorf("no pages to encode")
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: pagePoints(pages[0].Width, opts.DPI),
			Ht: pagePoints(pages[0].Height, opts.DPI),
		},
	})
	doc.SetAutoPageBreak(false, 0)

	for i, p := range pages {
		data, err := encodeJPEG(p, opts.Quality)
		if err != nil {
			return err
		}

		w := pagePoints(p.Width, opts.DPI)
		h := pagePoints(p.Height, opts.DPI)
		doc.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})

		// Registration names must be unique per payload, not per file:
		// the same source name may legally appear once per page.
		name := fmt.Sprintf("page-%d", i+1)
		imgOpts := gofpdf.ImageOptions{ImageType: "JPEG"}
		doc.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(data))
		doc.ImageOptions(name, 0, 0, w, h, false, imgOpts, 0, "")
	}

	if err := doc.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
