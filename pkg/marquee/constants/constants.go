// Package constants defines shared constants, types, and configuration values
// used throughout marquee.
package constants

import (
	"fmt"
	"os"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the window layer.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton is an abstract input button, mapped from keyboard,
// controller, or evdev input.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// WindowMode picks how the window is placed on screen.
type WindowMode int

const (
	WindowModeAuto       WindowMode = iota // Fullscreen on devices, resizable in dev mode
	WindowModeFullscreen                   // Borderless at desktop resolution
	WindowModeWindowed                     // Decorated and resizable
)

func (m WindowMode) String() string {
	switch m {
	case WindowModeFullscreen:
		return "fullscreen"
	case WindowModeWindowed:
		return "windowed"
	default:
		return "auto"
	}
}

// ParseWindowMode accepts "auto", "fullscreen" or "windowed"; empty means auto.
func ParseWindowMode(raw string) (WindowMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return WindowModeAuto, nil
	case "fullscreen":
		return WindowModeFullscreen, nil
	case "windowed":
		return WindowModeWindowed, nil
	}
	return WindowModeAuto, fmt.Errorf("unknown window mode %q", raw)
}

// Layout and timing defaults.
const (
	TopBarHeight           int32 = 56
	FooterHeight           int32 = 30
	RowPosterSize          int32 = 100
	RowSpacing             int32 = 8
	GalleryImageSize       int32 = 240
	IconSize               int32 = 25
	DefaultFrameDelayMilli       = 16
)
