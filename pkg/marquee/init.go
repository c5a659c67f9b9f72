// Package marquee is a small movie browser for handheld Linux devices: a
// scrollable list of movies with expandable rows, and a details screen with
// an image gallery, driven by a back-stack navigator.
//
// The package owns the SDL screens. Catalog data, navigation, row expansion
// and the view models live in the subpackages and have no SDL dependency.
package marquee

import (
	"log/slog"

	"github.com/BrandonKowalski/marquee/pkg/marquee/config"
	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/BrandonKowalski/marquee/pkg/marquee/internal"
)

// Options configures SDL initialization.
type Options struct {
	WindowTitle    string                 // Window title displayed in windowed mode
	WindowMode     constants.WindowMode   // Fullscreen, windowed, or auto (fullscreen unless ENVIRONMENT=DEV)
	AccentColorHex uint32                 // Top bar and focus color as 0xRRGGBB
	FontPath       string                 // TTF font for every text style
	ImageDir       string                 // Base directory for relative image paths
	ImageCacheSize int                    // Number of decoded images kept as textures
	LogPath        string                 // Full path for log file including filename (creates parent directories)
	LogLevel       string                 // Application log level ("debug", "info", "warn", "error")
	BackDevice     string                 // Optional evdev node whose back key acts as B
}

// OptionsFromConfig maps loaded settings onto Options. The config has already
// been validated, so an unknown window mode falls back to auto.
func OptionsFromConfig(cfg config.Config) Options {
	mode, _ := constants.ParseWindowMode(cfg.WindowMode)
	return Options{
		WindowTitle:    cfg.WindowTitle,
		WindowMode:     mode,
		AccentColorHex: cfg.AccentColor,
		FontPath:       cfg.FontPath,
		ImageDir:       cfg.ImageDir,
		ImageCacheSize: cfg.ImageCacheSize,
		LogPath:        cfg.LogPath,
		LogLevel:       cfg.LogLevel,
		BackDevice:     cfg.BackDevice,
	}
}

// Init initializes logging, SDL, fonts and input handling.
// Must be called before any screen is shown.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.NewTheme(options.AccentColorHex, options.FontPath)
	if err := internal.Init(options.WindowTitle, options.WindowMode, theme, options.ImageDir, options.ImageCacheSize); err != nil {
		return err
	}

	internal.WatchBackKey(options.BackDevice)
	return nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
