package internal

import (
	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window *Window
	theme  Theme
	icons  *Icons
	images *ImageLoader
)

// Init brings up SDL, the window, fonts, and input handling.
func Init(title string, mode constants.WindowMode, t Theme, imageDir string, imageCacheSize int) error {
	theme = t

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS); err != nil {
		return NewInfraError("sdl_init", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return NewInfraError("ttf_init", err)
	}

	if err := initInput(); err != nil {
		return err
	}

	w, err := initWindow(title, mode)
	if err != nil {
		return err
	}
	window = w
	icons = NewIcons(w.Renderer, constants.IconSize)
	images = NewImageLoader(imageDir, imageCacheSize)

	return initFonts(theme.FontPath)
}

func GetTheme() Theme {
	return theme
}

func GetIcons() *Icons {
	return icons
}

func GetImageLoader() *ImageLoader {
	return images
}

func SDLCleanup() {
	if images != nil {
		images.Close()
		images = nil
	}
	if icons != nil {
		icons.Destroy()
		icons = nil
	}
	if window != nil {
		window.closeWindow()
	}
	closeControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
