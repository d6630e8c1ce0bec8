// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/img2pdf/pkg/types"
)

func TestNormalizeGrayStaysGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	src.SetGray(1, 1, color.Gray{Y: 77})
	src.SetGray(3, 2, color.Gray{Y: 200})

	page := Normalize(src)

	assert.Equal(t, types.ModeGray, page.Mode)
	assert.Equal(t, 4, page.Width)
	assert.Equal(t, 3, page.Height)

	out, ok := page.Image.(*image.Gray)
	require.True(t, ok, "gray input should stay *image.Gray")
	assert.Equal(t, uint8(77), out.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(200), out.GrayAt(3, 2).Y)
}

func TestNormalizeCopiesPixels(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 10})

	page := Normalize(src)

	// Mutating the source afterwards must not show up in the page.
	src.SetGray(0, 0, color.Gray{Y: 250})

	out := page.Image.(*image.Gray)
	assert.Equal(t, uint8(10), out.GrayAt(0, 0).Y)
}

func TestNormalizeOpaqueColorKeepsPixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	page := Normalize(src)

	assert.Equal(t, types.ModeRGB, page.Mode)
	out, ok := page.Image.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 12, G: 34, B: 56, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, out.NRGBAAt(1, 0))
	assert.True(t, out.Opaque())
}

func TestNormalizeFlattensAlphaOntoWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})       // fully transparent
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})   // half red
	src.SetNRGBA(2, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})  // opaque

	page := Normalize(src)

	out, ok := page.Image.(*image.NRGBA)
	require.True(t, ok)

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(0, 0),
		"transparent pixel should become white")
	assert.Equal(t, color.NRGBA{R: 255, G: 127, B: 127, A: 255}, out.NRGBAAt(1, 0),
		"half-transparent red over white")
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, out.NRGBAAt(2, 0),
		"opaque pixel should keep its color")
	assert.True(t, out.Opaque())
}

func TestNormalizePalettedWithTransparency(t *testing.T) {
	palette := color.Palette{
		color.NRGBA{A: 0},
		color.NRGBA{R: 50, G: 60, B: 70, A: 255},
	}
	src := image.NewPaletted(image.Rect(0, 0, 2, 1), palette)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)

	page := Normalize(src)

	assert.Equal(t, types.ModeRGB, page.Mode)
	out := page.Image.(*image.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 50, G: 60, B: 70, A: 255}, out.NRGBAAt(1, 0))
}

func TestNormalizeYCbCrBecomesRGB(t *testing.T) {
	// JPEG round-trip yields a *image.YCbCr, the common camera case.
	var buf bytes.Buffer
	orig := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			orig.SetNRGBA(x, y, color.NRGBA{R: 180, G: 90, B: 45, A: 255})
		}
	}
	require.NoError(t, jpeg.Encode(&buf, orig, nil))

	decoded, format, err := image.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	_, isYCbCr := decoded.(*image.YCbCr)
	require.True(t, isYCbCr)

	page := Normalize(decoded)

	assert.Equal(t, types.ModeRGB, page.Mode)
	out, ok := page.Image.(*image.NRGBA)
	require.True(t, ok)
	assert.True(t, out.Opaque())
	assert.Equal(t, 8, page.Width)
	assert.Equal(t, 8, page.Height)
}

func TestNormalizeGray16BecomesRGB(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 2))
	src.SetGray16(0, 0, color.Gray16{Y: 0x8000})

	page := Normalize(src)

	assert.Equal(t, types.ModeRGB, page.Mode)
	_, ok := page.Image.(*image.NRGBA)
	assert.True(t, ok)
}

func TestNormalizeShiftsNonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 9, 8))
	src.SetNRGBA(5, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	page := Normalize(src)

	assert.Equal(t, 4, page.Width)
	assert.Equal(t, 3, page.Height)
	out := page.Image.(*image.NRGBA)
	assert.Equal(t, image.Rect(0, 0, 4, 3), out.Bounds())
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, out.NRGBAAt(0, 0))
}

func TestNormalizeIdempotent(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 3))
	gray.SetGray(2, 2, color.Gray{Y: 99})

	once := Normalize(gray)
	twice := Normalize(once.Image)
	assert.Equal(t, once.Mode, twice.Mode)
	assert.Equal(t, once.Image.(*image.Gray).Pix, twice.Image.(*image.Gray).Pix)

	rgb := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	rgb.SetNRGBA(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	once = Normalize(rgb)
	twice = Normalize(once.Image)
	assert.Equal(t, once.Mode, twice.Mode)
	assert.Equal(t, once.Image.(*image.NRGBA).Pix, twice.Image.(*image.NRGBA).Pix)
}

func TestProbeMode(t *testing.T) {
	assert.Equal(t, types.ModeGray, ProbeMode(color.GrayModel))
	assert.Equal(t, types.ModeRGB, ProbeMode(color.NRGBAModel))
	assert.Equal(t, types.ModeRGB, ProbeMode(color.YCbCrModel))
	assert.Equal(t, types.ModeRGB, ProbeMode(color.Gray16Model))
}
