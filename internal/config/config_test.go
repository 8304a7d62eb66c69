package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "cod-config")
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	path := filepath.Join(dir, "cod.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxDepth != DefaultMaxDepth || cfg.HistoryFile != "" || !cfg.Color {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should be valid: %v", err)
	}
	if cfg.Level() != logrus.WarnLevel {
		t.Errorf("Default level should be warning instead of %s", cfg.Level())
	}
}

func TestLoad(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	path := writeConfig(t, dir, `
max_depth: 100
log_level: debug
color: false
history_file: /tmp/cod_history
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 100 || cfg.Color || cfg.HistoryFile != "/tmp/cod_history" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Level should be debug instead of %s", cfg.Level())
	}
	if cfg.Path != path {
		t.Errorf("Path should be %s instead of %s", path, cfg.Path)
	}
}

func TestLoadPartial(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	cfg, err := Load(writeConfig(t, dir, "max_depth: 7\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 7 || cfg.LogLevel != DefaultLogLevel || !cfg.Color {
		t.Errorf("Missing keys should keep their defaults %+v", cfg)
	}

	cfg, err = Load(writeConfig(t, dir, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("An empty file should give the defaults %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	if _, err := Load(""); err == nil {
		t.Errorf("An empty path should fail")
	}

	if _, err := Load(filepath.Join(dir, "missing", "cod.yaml")); err == nil {
		t.Errorf("A missing file should fail")
	}

	_, err := Load(writeConfig(t, dir, "depth: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "depth") {
		t.Errorf("Unknown keys should be rejected, got %v", err)
	}

	_, err = Load(writeConfig(t, dir, "max_depth: 0\n"))
	if !errors.Is(err, errInvalidMaxDepth) {
		t.Errorf("Expected %v instead of %v", errInvalidMaxDepth, err)
	}

	_, err = Load(writeConfig(t, dir, "log_level: loud\n"))
	if !errors.Is(err, errInvalidLogLevel) {
		t.Errorf("Expected %v instead of %v", errInvalidLogLevel, err)
	}
}
