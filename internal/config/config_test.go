// ABOUTME: Tests for config loading, env overrides, and path expansion.
// ABOUTME: Redirects XDG directories into t.TempDir to stay hermetic.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("WP_API_URL", "")
	os.Unsetenv("WP_API_URL")
	t.Setenv("WP_DATA_DIR", "")
	os.Unsetenv("WP_DATA_DIR")
	return configHome, dataHome
}

func TestLoadDefaults(t *testing.T) {
	_, dataHome := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	want := filepath.Join(dataHome, "workoutplan")
	if cfg.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	configHome, _ := isolate(t)

	dir := filepath.Join(configHome, "workoutplan")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	content := `{"api_url": "https://fit.example.com", "data_dir": "/tmp/wpdata"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIURL != "https://fit.example.com" {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, "https://fit.example.com")
	}
	if cfg.DataDir != "/tmp/wpdata" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/wpdata")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	configHome, _ := isolate(t)

	dir := filepath.Join(configHome, "workoutplan")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	content := `{"api_url": "https://file.example.com"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("WP_API_URL", "https://env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("APIURL = %q, want env override %q", cfg.APIURL, "https://env.example.com")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := &Config{APIURL: "https://saved.example.com", DataDir: "/tmp/wpdata"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIURL != cfg.APIURL {
		t.Errorf("APIURL = %q, want %q", loaded.APIURL, cfg.APIURL)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, cfg.DataDir)
	}
}

func TestSessionDir(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/wpdata"}
	if got := cfg.SessionDir(); got != "/tmp/wpdata/session" {
		t.Errorf("SessionDir() = %q, want %q", got, "/tmp/wpdata/session")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"bare tilde", "~", home},
		{"tilde prefix", "~/data", filepath.Join(home, "data")},
		{"absolute untouched", "/var/lib/wp", "/var/lib/wp"},
		{"relative untouched", "data/wp", "data/wp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.path); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
