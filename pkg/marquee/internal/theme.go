package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme is the immutable look of the app. It is built once at startup and
// handed to each screen by value.
type Theme struct {
	TopBarColor     sdl.Color // Top bar background
	TopBarTextColor sdl.Color // Top bar title and back arrow
	CardColor       sdl.Color // Row card background
	FocusColor      sdl.Color // Outline of the focused row
	TextColor       sdl.Color // Titles
	CaptionColor    sdl.Color // Director, year, actors, rating
	PlotColor       sdl.Color // Expanded plot text
	DividerColor    sdl.Color // Divider lines
	PlaceholderFill sdl.Color // Image box while the image is loading or missing
	HintColor       sdl.Color // Footer help text
	BackgroundColor sdl.Color // Screen background
	FontPath        string    // Path to the UI font
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// NewTheme returns the default light theme with accent as the top bar color.
func NewTheme(accent uint32, fontPath string) Theme {
	return Theme{
		TopBarColor:     HexToColor(accent),
		TopBarTextColor: HexToColor(0xFFFFFF),
		CardColor:       HexToColor(0xFFFFFF),
		FocusColor:      HexToColor(accent),
		TextColor:       HexToColor(0x000000),
		CaptionColor:    HexToColor(0x444444),
		PlotColor:       HexToColor(0x555555),
		DividerColor:    HexToColor(0xCCCCCC),
		PlaceholderFill: HexToColor(0xE0E0E0),
		HintColor:       HexToColor(0x666666),
		BackgroundColor: HexToColor(0xF2F2F2),
		FontPath:        fontPath,
	}
}
