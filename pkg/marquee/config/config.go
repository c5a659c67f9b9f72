// Package config loads marquee settings from an optional TOML file, a .env
// file, and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Environment variables that override file settings.
const (
	EnvLanguage    = "MARQUEE_LANGUAGE"
	EnvLogLevel    = "MARQUEE_LOG_LEVEL"
	EnvLogPath     = "MARQUEE_LOG_PATH"
	EnvCatalog     = "MARQUEE_CATALOG"
	EnvFont        = "MARQUEE_FONT"
	EnvImageDir    = "MARQUEE_IMAGE_DIR"
	EnvBackDevice  = "MARQUEE_BACK_DEVICE"
	EnvAccentColor = "MARQUEE_ACCENT_COLOR"
	EnvWindowMode  = "MARQUEE_WINDOW_MODE"
)

type Config struct {
	WindowTitle    string `toml:"window_title"`
	WindowMode     string `toml:"window_mode"` // auto, fullscreen or windowed
	Language       string `toml:"language"`
	LogPath        string `toml:"log_path"`
	LogLevel       string `toml:"log_level"`
	CatalogPath    string `toml:"catalog_path"` // empty uses the built-in catalog
	FontPath       string `toml:"font_path"`
	ImageDir       string `toml:"image_dir"`
	ImageCacheSize int    `toml:"image_cache_size"`
	AccentColor    uint32 `toml:"accent_color"`
	BackDevice     string `toml:"back_device"` // evdev node for a hardware back key
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		WindowTitle:    "Movies",
		WindowMode:     "auto",
		Language:       "en",
		LogPath:        "logs/marquee.log",
		LogLevel:       "info",
		FontPath:       "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		ImageDir:       "images",
		ImageCacheSize: 24,
		AccentColor:    0xFF00FF,
	}
}

// Load builds a Config from defaults, then the TOML file at path (skipped
// when path is empty or the file does not exist), then .env and the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.WindowMode = getEnv(EnvWindowMode, c.WindowMode)
	c.Language = getEnv(EnvLanguage, c.Language)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.LogPath = getEnv(EnvLogPath, c.LogPath)
	c.CatalogPath = getEnv(EnvCatalog, c.CatalogPath)
	c.FontPath = getEnv(EnvFont, c.FontPath)
	c.ImageDir = getEnv(EnvImageDir, c.ImageDir)
	c.BackDevice = getEnv(EnvBackDevice, c.BackDevice)

	if v := os.Getenv(EnvAccentColor); v != "" {
		n, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvAccentColor, v, err)
		}
		c.AccentColor = uint32(n)
	}
	return nil
}

// Validate checks settings that would otherwise fail late.
func (c Config) Validate() error {
	if c.ImageCacheSize <= 0 {
		return fmt.Errorf("config: image_cache_size must be positive, got %d", c.ImageCacheSize)
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return fmt.Errorf("config: language %q: %w", c.Language, err)
		}
	}
	if _, err := constants.ParseWindowMode(c.WindowMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.FontPath == "" {
		return fmt.Errorf("config: font_path is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
