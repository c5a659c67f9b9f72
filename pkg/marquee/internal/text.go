package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders a single line into a texture. Empty text or a render
// failure yields nil, which callers treat as nothing to draw.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Text render failed", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}
	return texture
}

// DrawText renders text at (x, y) and returns the height it used.
// Text wider than maxWidth is truncated with an ellipsis.
func DrawText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, x, y, maxWidth int32) int32 {
	text = TruncateText(font, text, maxWidth)
	texture := RenderText(renderer, text, font, color)
	if texture == nil {
		return 0
	}
	defer texture.Destroy()

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return h
}

// DrawWrappedText renders text word-wrapped to maxWidth and returns the
// total height used.
func DrawWrappedText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, x, y, maxWidth int32) int32 {
	total := int32(0)
	for _, line := range WrapText(font, text, maxWidth) {
		h := DrawText(renderer, line, font, color, x, y+total, maxWidth)
		if h == 0 {
			h = int32(font.Height())
		}
		total += h
	}
	return total
}

// WrapText splits text into lines that fit maxWidth, breaking on spaces.
// A single word wider than maxWidth gets a line of its own.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var lines []string
	for _, paragraph := range strings.Split(normalized, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if textWidth(font, candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}

// TruncateText shortens text with "..." until it fits maxWidth.
func TruncateText(font *ttf.Font, text string, maxWidth int32) string {
	if maxWidth <= 0 || textWidth(font, text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "..."
		if textWidth(font, candidate) <= maxWidth {
			return candidate
		}
	}
	return "..."
}

func textWidth(font *ttf.Font, text string) int32 {
	if font == nil {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}
