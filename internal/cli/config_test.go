package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ipath/pkg/errors"
	"github.com/matzehuels/ipath/pkg/ipath"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

func TestConfigDirHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFile)

	cfg, err := loadConfig(path, false, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	_, err := loadConfig(path, true, log.New(&bytes.Buffer{}))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
timeout = "90s"
mapping_url = "http://localhost:8080/mapping.cgi"
sequential_colormap = "viridis"

[defaults]
export_type = "png"
export_dpi = 300
include_secondary = true
`)

	cfg, err := loadConfig(path, true, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Timeout.Duration != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout.Duration)
	}
	if cfg.MappingURL != "http://localhost:8080/mapping.cgi" {
		t.Errorf("MappingURL = %q", cfg.MappingURL)
	}
	if cfg.InspectURL != ipath.DefaultInspectURL {
		t.Errorf("InspectURL = %q, want default", cfg.InspectURL)
	}
	if cfg.SequentialColormap != "viridis" {
		t.Errorf("SequentialColormap = %q, want viridis", cfg.SequentialColormap)
	}

	want := ipath.DefaultOptions()
	want.ExportType = ipath.ExportPNG
	want.ExportDPI = 300
	want.IncludeSecondary = true
	if cfg.Defaults != want {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `timeout = `},
		{"bad duration", `timeout = "soon"`},
		{"bad export type", "[defaults]\nexport_type = \"gif\""},
		{"bad colormap", `diverging_colormap = "rainbow"`},
		{"negative timeout", `timeout = "-1s"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := loadConfig(path, true, log.New(&bytes.Buffer{}))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, `colour = "red"`)

	var buf bytes.Buffer
	if _, err := loadConfig(path, true, log.New(&buf)); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if !strings.Contains(buf.String(), "colour") {
		t.Errorf("expected warning naming the unknown key, got %q", buf.String())
	}
}
