// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// settingsCommand mirrors the convert command's flag defaults without
// touching the real command's state.
func settingsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "convert"}
	cmd.Flags().String("output", types.DefaultOutput, "")
	cmd.Flags().Int("dpi", types.DefaultDPI, "")
	cmd.Flags().Bool("validate", false, "")
	return cmd
}

func TestStringSettingPrecedence(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := settingsCommand()

	if got := stringSetting(cmd, "output", "convert.output"); got != types.DefaultOutput {
		t.Errorf("unset everywhere: got %q, want flag default %q", got, types.DefaultOutput)
	}

	viper.Set("convert.output", "config.pdf")
	if got := stringSetting(cmd, "output", "convert.output"); got != "config.pdf" {
		t.Errorf("config only: got %q, want config.pdf", got)
	}

	if err := cmd.Flags().Set("output", "flag.pdf"); err != nil {
		t.Fatal(err)
	}
	if got := stringSetting(cmd, "output", "convert.output"); got != "flag.pdf" {
		t.Errorf("flag set: got %q, want flag.pdf", got)
	}
}

func TestIntSettingPrecedence(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := settingsCommand()

	if got := intSetting(cmd, "dpi", "convert.dpi"); got != types.DefaultDPI {
		t.Errorf("unset everywhere: got %d, want flag default %d", got, types.DefaultDPI)
	}

	viper.Set("convert.dpi", 150)
	if got := intSetting(cmd, "dpi", "convert.dpi"); got != 150 {
		t.Errorf("config only: got %d, want 150", got)
	}

	if err := cmd.Flags().Set("dpi", "200"); err != nil {
		t.Fatal(err)
	}
	if got := intSetting(cmd, "dpi", "convert.dpi"); got != 200 {
		t.Errorf("flag set: got %d, want 200", got)
	}
}

func TestBoolSettingPrecedence(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := settingsCommand()

	if boolSetting(cmd, "validate", "convert.validate") {
		t.Error("unset everywhere: got true, want flag default false")
	}

	viper.Set("convert.validate", true)
	if !boolSetting(cmd, "validate", "convert.validate") {
		t.Error("config only: got false, want config true")
	}

	// An explicit --validate=false must beat a config file's true.
	if err := cmd.Flags().Set("validate", "false"); err != nil {
		t.Fatal(err)
	}
	if boolSetting(cmd, "validate", "convert.validate") {
		t.Error("explicit flag false: got true, want false")
	}
}
