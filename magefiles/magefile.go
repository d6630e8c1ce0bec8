//go:build mage

// Package main contains Mage build targets for img2pdf developer tooling.
// Implements: docs/ARCHITECTURE § Developer Tooling.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "img2pdf"
	cmdPkg  = "./cmd/img2pdf"
)

// Build compiles the CLI binary into bin/ with the git version stamped in.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}

	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}

	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Tidy syncs go.mod and go.sum with the source tree.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Smoke builds the binary and runs a conversion end to end on a
// generated sample folder, checking that a PDF comes out.
func Smoke() error {
	mg.Deps(Build)

	dir, err := os.MkdirTemp("", "img2pdf-smoke-")
	if err != nil {
		return fmt.Errorf("creating smoke dir: %w", err)
	}
	defer os.RemoveAll(dir)

	// Names chosen so natural order differs from lexicographic order.
	for i, name := range []string{"page1.png", "page2.png", "page10.png"} {
		if err := writeSamplePNG(filepath.Join(dir, name), uint8(60*i)); err != nil {
			return err
		}
	}

	out := filepath.Join(dir, "smoke.pdf")
	if err := sh.RunV(filepath.Join(binDir, binName), "convert", dir, "-o", out, "--no-history", "--validate"); err != nil {
		return fmt.Errorf("smoke conversion: %w", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		return fmt.Errorf("smoke output missing: %w", err)
	}
	fmt.Printf("Smoke OK: %s (%d bytes)\n", out, info.Size())
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binDir)
}

func writeSamplePNG(path string, shade uint8) error {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: shade, G: uint8(x * 4), B: uint8(y * 5), A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
