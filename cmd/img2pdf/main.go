// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the img2pdf CLI.
// Implements: prd001-conversion, prd005-history, prd006-inspection
//
//	(CLI surface).
//
// See docs/ARCHITECTURE § Command Surface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the img2pdf CLI.
var rootCmd = &cobra.Command{
	Use:   "img2pdf",
	Short: "Combine a folder of images into a single PDF",
	Long: `img2pdf batch-combines photos and scans into one multi-page PDF. Pages
follow natural filename order, so img2.png comes before img10.png, and
every image is normalized to an alpha-free grayscale or RGB page before
encoding.

convert performs the conversion. inspect previews the page order and
image details without writing anything. history lists past runs from a
local SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./img2pdf.yaml or ~/.config/img2pdf/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("img2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "img2pdf"))
		}
	}

	viper.SetEnvPrefix("IMG2PDF")
	viper.AutomaticEnv()

	viper.SetDefault("history.enabled", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
