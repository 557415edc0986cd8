// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "conrod.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, expected defaults", cfg)
	}
	if cfg.Input.DragThresholdDp != 4 {
		t.Errorf("default drag threshold %g, expected 4", cfg.Input.DragThresholdDp)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conrod.yaml")
	data := "input:\n  drag_threshold_dp: 7.5\n  natural_scroll: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.DragThresholdDp != 7.5 {
		t.Errorf("drag threshold %g, expected 7.5", cfg.Input.DragThresholdDp)
	}
	if !cfg.Input.NaturalScroll {
		t.Error("natural_scroll not applied")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conrod.yaml")
	if err := os.WriteFile(path, []byte("input:\n  natural_scroll: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Input.DragThresholdDp != 4 {
		t.Errorf("unset threshold %g, expected the 4dp default", cfg.Input.DragThresholdDp)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conrod.yaml")
	if err := os.WriteFile(path, []byte("input: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed file produced no error")
	}
}
