package internal

import (
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RenderSVG rasterizes an SVG document into a white texture of the given
// size. Tint it with SetColorMod before drawing.
func RenderSVG(renderer *sdl.Renderer, svg string, size int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, NewInfraError("parse_svg", err)
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		size, size, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, NewInfraError("svg_surface", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, NewInfraError("svg_texture", err)
	}
	_ = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Icons are the rasterized screen icons, keyed by SVG source.
type Icons struct {
	renderer *sdl.Renderer
	size     int32
	cache    map[string]*sdl.Texture
}

func NewIcons(renderer *sdl.Renderer, size int32) *Icons {
	return &Icons{renderer: renderer, size: size, cache: make(map[string]*sdl.Texture)}
}

// Get returns the texture for svg, rasterizing it on first use. Returns nil
// if the icon cannot be drawn.
func (i *Icons) Get(svg string) *sdl.Texture {
	if t, ok := i.cache[svg]; ok {
		return t
	}
	t, err := RenderSVG(i.renderer, svg, i.size)
	if err != nil {
		GetInternalLogger().Warn("Failed to render icon", "error", err)
		t = nil
	}
	i.cache[svg] = t
	return t
}

// Draw renders svg tinted with color into rect.
func (i *Icons) Draw(svg string, rect sdl.Rect, color sdl.Color) {
	t := i.Get(svg)
	if t == nil {
		return
	}
	_ = t.SetColorMod(color.R, color.G, color.B)
	_ = t.SetAlphaMod(color.A)
	_ = i.renderer.Copy(t, nil, &rect)
}

func (i *Icons) Destroy() {
	for k, t := range i.cache {
		if t != nil {
			t.Destroy()
		}
		delete(i.cache, k)
	}
}
