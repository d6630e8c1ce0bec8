// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PageInfo describes one encoded page in a run report.
type PageInfo struct {
	// Source is the image filename the page came from.
	Source string `json:"source" yaml:"source"`

	// Mode is the canonical color mode the page was normalized to.
	Mode ColorMode `json:"mode" yaml:"mode"`

	// Width and Height are the page's pixel dimensions.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Failure describes one skipped input file.
type Failure struct {
	// Source is the image filename that could not be processed.
	Source string `json:"source" yaml:"source"`

	// Cause is the human-readable reason it was skipped.
	Cause string `json:"cause" yaml:"cause"`
}

// Report is the optional YAML record of a conversion run.
type Report struct {
	// Folder is the input directory.
	Folder string `json:"folder" yaml:"folder"`

	// Output is the produced PDF path.
	Output string `json:"output" yaml:"output"`

	// Engine is the encoder backend used.
	Engine Engine `json:"engine" yaml:"engine"`

	// DPI and Quality are the hints the encoder ran with.
	DPI     int `json:"dpi" yaml:"dpi"`
	Quality int `json:"quality" yaml:"quality"`

	// Pages lists the encoded pages in document order.
	Pages []PageInfo `json:"pages" yaml:"pages"`

	// Failures lists inputs that were skipped, in scan order.
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Bytes is the size of the produced PDF.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
