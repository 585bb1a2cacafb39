package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"showroom/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, missing, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "absent.yaml")})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !missing {
		t.Error("missing file not reported")
	}
	if cfg.Movement.Preset != config.Default().Movement.Preset {
		t.Errorf("preset = %q, want the default", cfg.Movement.Preset)
	}
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	path := writeConfig(t, "movement:\n  preset: showroom\nlogging:\n  level: info\n")
	cfg, missing, err := loadConfig(options{configPath: path, preset: "sandbox", logLevel: "debug"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if missing {
		t.Error("existing file reported missing")
	}
	if cfg.Movement.Preset != "sandbox" || cfg.Logging.Level != "debug" {
		t.Errorf("overrides not applied: preset %q level %q", cfg.Movement.Preset, cfg.Logging.Level)
	}
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	path := writeConfig(t, "window:\n  title: Test\n")
	_, _, err := loadConfig(options{configPath: path, preset: "cave"})
	if !errors.Is(err, config.ErrInvalidPreset) {
		t.Errorf("err = %v, want ErrInvalidPreset", err)
	}
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "window: [not a map\n")
	if _, _, err := loadConfig(options{configPath: path}); err == nil {
		t.Error("malformed config accepted")
	}
}

func TestLoadCatalogFallsBackToBuiltIn(t *testing.T) {
	c, err := loadCatalog(filepath.Join(t.TempDir(), "absent.yaml"), discard())
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if c.Len() != 8 {
		t.Errorf("products = %d, want the 8 built-in", c.Len())
	}
}

func TestPresetsCommandListsPresets(t *testing.T) {
	path := writeConfig(t, "movement:\n  preset: showroom\n")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"presets", "--config", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, want := range []string{"sandbox\tfield", "showroom\thall"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q missing %q", out.String(), want)
		}
	}
}

func TestRootCommandRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("positional argument accepted")
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
