// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// Normalize maps a decoded image onto a canonical page. 8-bit grayscale
// stays grayscale; every other source becomes RGB, with transparency
// flattened onto an opaque white background. The returned page always
// owns a fresh pixel buffer, so later mutation of src cannot leak into
// an encoded PDF.
func Normalize(src image.Image) *types.Page {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := src.(*image.Gray); ok {
		dst := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), g, b.Min, draw.Src)
		return &types.Page{Image: dst, Mode: types.ModeGray, Width: w, Height: h}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if opaque(src) {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		// out = src*alpha + white*(1-alpha), leaving every pixel fully opaque.
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	}
	return &types.Page{Image: dst, Mode: types.ModeRGB, Width: w, Height: h}
}

// ProbeMode reports the canonical mode Normalize produces for a source
// with the given color model. Only 8-bit grayscale maps to gray.
func ProbeMode(m color.Model) types.ColorMode {
	if m == color.GrayModel {
		return types.ModeGray
	}
	return types.ModeRGB
}

// opaque reports whether src is free of translucent pixels. Image types
// that can carry alpha expose an Opaque check; the rest (YCbCr, CMYK,
// Gray16, ...) cannot hold alpha at all.
func opaque(src image.Image) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return true
}
