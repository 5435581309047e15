package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLaneCenter(t *testing.T) {
	f := Default().Field

	centers := []float64{60, 180, 300}
	for lane, want := range centers {
		if got := f.LaneCenter(lane); got != want {
			t.Errorf("LaneCenter(%d) = %v, expected %v", lane, got, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("field:\n  lanes: 5\n  width: 500\n  height: 800\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Field.Lanes != 5 || cfg.Field.Width != 500 {
		t.Errorf("custom config not applied, got field %+v", cfg.Field)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Point home and cwd at empty dirs so no user or local config is found
	t.Setenv("HOME", t.TempDir())

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWd) //nolint:errcheck

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("fallback config = %+v, expected default", cfg)
	}
}
