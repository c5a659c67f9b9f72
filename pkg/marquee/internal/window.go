package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	width           int32
	height          int32
	hasVSync        bool
	lastPresentTime uint64
}

func windowFlags(mode constants.WindowMode) uint32 {
	if mode == constants.WindowModeAuto {
		mode = constants.WindowModeFullscreen
		if constants.IsDevMode() {
			mode = constants.WindowModeWindowed
		}
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	switch mode {
	case constants.WindowModeFullscreen:
		flags |= sdl.WINDOW_BORDERLESS | sdl.WINDOW_FULLSCREEN_DESKTOP
	case constants.WindowModeWindowed:
		flags |= sdl.WINDOW_RESIZABLE
	}
	return flags
}

func initWindow(title string, mode constants.WindowMode) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = 1024, 768
	}

	width, height := displayMode.W, displayMode.H
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 480)
		height = envDimension(constants.WindowHeightEnvVar, 800)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height, "mode", mode.String())

	window, err := sdl.CreateWindow(title, x, y, width, height, windowFlags(mode))
	if err != nil {
		return nil, NewInfraError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			return nil, NewInfraError("create_renderer", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}, nil
}

func envDimension(key string, fallback int32) int32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "key", key, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	return w.width
}

func (w *Window) GetHeight() int32 {
	return w.height
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < constants.DefaultFrameDelayMilli {
			sdl.Delay(uint32(constants.DefaultFrameDelayMilli - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Clear fills the whole frame with c.
func (w *Window) Clear(c sdl.Color) {
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.Renderer.Clear()
}

// FillRect draws a solid rectangle.
func (w *Window) FillRect(rect sdl.Rect, c sdl.Color) {
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.Renderer.FillRect(&rect)
}

// OutlineRect draws a rectangle border of the given thickness.
func (w *Window) OutlineRect(rect sdl.Rect, thickness int32, c sdl.Color) {
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	for i := int32(0); i < thickness; i++ {
		r := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		w.Renderer.DrawRect(&r)
	}
}

func (w *Window) String() string {
	return fmt.Sprintf("window(%q %dx%d)", w.Title, w.GetWidth(), w.GetHeight())
}
