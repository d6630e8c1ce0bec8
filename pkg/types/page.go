// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the img2pdf pipeline.
// Implements: prd003-normalization (Page, R1.1-R1.3);
//
//	prd001-conversion (Report, R6.1-R6.3);
//	prd004-encoding (Engine).
package types

import "image"

// ColorMode is the pixel format of a canonical page. Pages are restricted
// to these two modes before encoding; neither carries an alpha channel.
type ColorMode string

const (
	ModeGray ColorMode = "gray"
	ModeRGB  ColorMode = "rgb"
)

// Page is one canonical page of the output document: a decoded image
// normalized to an alpha-free color mode, plus the source it came from.
// The pixel buffer is a private copy, independent of any decoder state.
type Page struct {
	// Source is the filename the page was decoded from.
	Source string `json:"source" yaml:"source"`

	// Image is the normalized pixel buffer: *image.Gray for ModeGray,
	// *image.NRGBA with full opacity for ModeRGB.
	Image image.Image `json:"-" yaml:"-"`

	// Mode is the canonical color mode.
	Mode ColorMode `json:"mode" yaml:"mode"`

	// Width and Height are the pixel dimensions, matching the source image.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}
