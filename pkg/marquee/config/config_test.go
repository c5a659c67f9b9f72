package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marquee.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg.ImageCacheSize != Default().ImageCacheSize {
		t.Errorf("ImageCacheSize = %d", cfg.ImageCacheSize)
	}
}

func TestLoadFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
window_title = "Cinema"
language = "es"
catalog_path = "/srv/movies.toml"
image_cache_size = 8
accent_color = 0x336699
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WindowTitle != "Cinema" || cfg.Language != "es" || cfg.CatalogPath != "/srv/movies.toml" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.ImageCacheSize != 8 || cfg.AccentColor != 0x336699 {
		t.Errorf("ImageCacheSize=%d AccentColor=%#x", cfg.ImageCacheSize, cfg.AccentColor)
	}
	if cfg.FontPath != Default().FontPath {
		t.Errorf("unset FontPath = %q, want default", cfg.FontPath)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvLanguage, "en")
	t.Setenv(EnvImageDir, "/tmp/posters")
	t.Setenv(EnvAccentColor, "0x00FF00")

	cfg, err := Load(writeConfig(t, `language = "es"`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "en" || cfg.ImageDir != "/tmp/posters" || cfg.AccentColor != 0x00FF00 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvBackDevice+"=/dev/input/event3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set; clear it
	// for the test and let t.Setenv restore the original afterwards.
	t.Setenv(EnvBackDevice, "")
	os.Unsetenv(EnvBackDevice)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackDevice != "/dev/input/event3" {
		t.Errorf("BackDevice = %q", cfg.BackDevice)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	testCases := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{"malformed toml", "window_title = ", nil, "config:"},
		{"bad cache size", "image_cache_size = 0", nil, "image_cache_size"},
		{"bad language", `language = "not a tag!"`, nil, "language"},
		{"empty font", `font_path = ""`, nil, "font_path"},
		{"bad accent env", "", map[string]string{EnvAccentColor: "purple"}, EnvAccentColor},
		{"bad window mode", `window_mode = "tiled"`, nil, "window mode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() error = %v, want mention of %q", err, tc.want)
			}
		})
	}
}
