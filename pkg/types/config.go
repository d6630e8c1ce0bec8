package types

import "fmt"

// Engine identifies the PDF encoder backend.
type Engine string

const (
	// EnginePDFCPU encodes through the pdfcpu image-import pipeline (default).
	EnginePDFCPU Engine = "pdfcpu"

	// EngineGofpdf encodes through gofpdf page composition.
	EngineGofpdf Engine = "gofpdf"
)

// ParseEngine validates an engine name from a flag or config file.
// An empty string selects the default engine.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case EnginePDFCPU, EngineGofpdf:
		return Engine(s), nil
	case "":
		return EnginePDFCPU, nil
	default:
		return "", fmt.Errorf("unknown engine %q: use %s or %s", s, EnginePDFCPU, EngineGofpdf)
	}
}

// Encoder hint defaults. DPI maps pixel dimensions to page points
// (points = pixels * 72 / DPI); Quality is the JPEG quality used when
// embedding pages.
const (
	DefaultDPI     = 100
	DefaultQuality = 85
	DefaultOutput  = "images.pdf"
)

// ConvertConfig holds settings for a single conversion run.
type ConvertConfig struct {
	// Engine selects the PDF encoder backend: pdfcpu or gofpdf.
	Engine Engine `json:"engine" yaml:"engine"`

	// DPI is the resolution hint applied when sizing PDF pages (default 100).
	DPI int `json:"dpi" yaml:"dpi"`

	// Quality is the JPEG quality hint on a 0-100 scale (default 85).
	Quality int `json:"quality" yaml:"quality"`

	// Validate runs a structural check on the produced PDF after encoding.
	Validate bool `json:"validate" yaml:"validate"`
}

// WithDefaults returns a copy with zero-valued fields replaced by defaults.
func (c ConvertConfig) WithDefaults() ConvertConfig {
	if c.Engine == "" {
		c.Engine = EnginePDFCPU
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.Quality <= 0 {
		c.Quality = DefaultQuality
	}
	return c
}

// HistoryConfig holds settings for the local run-history store.
type HistoryConfig struct {
	// Enabled controls whether conversion runs are recorded (default true).
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path overrides the database location
	// (default: <user config dir>/img2pdf/history.db).
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}
