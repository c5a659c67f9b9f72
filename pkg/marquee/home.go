package marquee

import (
	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/BrandonKowalski/marquee/pkg/marquee/expansion"
	"github.com/BrandonKowalski/marquee/pkg/marquee/internal"
	"github.com/BrandonKowalski/marquee/pkg/marquee/presenter"
	"github.com/veandco/go-sdl2/sdl"
)

// HomeOptions configures HomeScreen.
type HomeOptions struct {
	Resume *HomeResume // list position to restore, nil for the top
}

type homeController struct {
	presenter *presenter.Home
	view      presenter.HomeView
	layouts   []rowLayout
	tops      []int32 // row offsets from the top of the list
	total     int32
	dirty     bool

	focused int
	scrollY int32

	directionalInput internal.DirectionalInput
}

func newHomeController(home *presenter.Home, resume *HomeResume) *homeController {
	hc := &homeController{
		presenter:        home,
		dirty:            true,
		directionalInput: internal.NewDirectionalInput(),
	}
	hc.refresh()

	if resume != nil {
		hc.focused = resume.Focused
		hc.scrollY = resume.ScrollY
		hc.clamp()
	}
	return hc
}

func (hc *homeController) rowWidth() int32 {
	return internal.GetWindow().GetWidth() - 2*screenMargin
}

// refresh rebuilds the view and row geometry if a row changed.
func (hc *homeController) refresh() {
	if !hc.dirty {
		return
	}
	hc.dirty = false
	hc.view = hc.presenter.View()

	width := hc.rowWidth()
	hc.layouts = make([]rowLayout, len(hc.view.Rows))
	hc.tops = make([]int32, len(hc.view.Rows))

	y := constants.RowSpacing
	for i, row := range hc.view.Rows {
		hc.layouts[i] = measureRow(row, width)
		hc.tops[i] = y
		y += hc.layouts[i].height + constants.RowSpacing
	}
	hc.total = y
}

func (hc *homeController) clamp() {
	if n := len(hc.view.Rows); hc.focused >= n {
		hc.focused = n - 1
	}
	if hc.focused < 0 {
		hc.focused = 0
	}

	maxScroll := max(hc.total-contentRect().H, 0)
	hc.scrollY = min(max(hc.scrollY, 0), maxScroll)
}

// ensureFocusedVisible scrolls the least amount that shows the focused row.
func (hc *homeController) ensureFocusedVisible() {
	if len(hc.view.Rows) == 0 {
		return
	}
	viewport := contentRect().H
	top := hc.tops[hc.focused] - constants.RowSpacing
	bottom := hc.tops[hc.focused] + hc.layouts[hc.focused].height + constants.RowSpacing

	if top < hc.scrollY {
		hc.scrollY = top
	} else if bottom-hc.scrollY > viewport {
		hc.scrollY = bottom - viewport
	}
	hc.clamp()
}

func (hc *homeController) moveFocus(delta int) {
	if len(hc.view.Rows) == 0 {
		return
	}
	hc.focused = min(max(hc.focused+delta, 0), len(hc.view.Rows)-1)
	hc.ensureFocusedVisible()
}

func (hc *homeController) toggleFocused() {
	if len(hc.view.Rows) == 0 {
		return
	}
	hc.presenter.OnRowArrowTap(hc.view.Rows[hc.focused].ID)
	hc.refresh()
	hc.ensureFocusedVisible()
}

func (hc *homeController) resume() HomeResume {
	return HomeResume{Focused: hc.focused, ScrollY: hc.scrollY}
}

// handleButton applies one press. It returns a result when the screen should
// close.
func (hc *homeController) handleButton(button constants.VirtualButton) *HomeResult {
	switch button {
	case constants.VirtualButtonUp:
		hc.moveFocus(-1)
	case constants.VirtualButtonDown:
		hc.moveFocus(1)
	case constants.VirtualButtonX, constants.VirtualButtonLeft, constants.VirtualButtonRight:
		hc.toggleFocused()
	case constants.VirtualButtonA:
		if len(hc.view.Rows) > 0 {
			return &HomeResult{
				Action:  HomeActionSelected,
				MovieID: hc.view.Rows[hc.focused].MovieID,
				Resume:  hc.resume(),
			}
		}
	case constants.VirtualButtonB:
		return &HomeResult{Action: HomeActionQuit, Resume: hc.resume()}
	}
	return nil
}

// handleTap maps a click or touch to a row: the arrow toggles, anywhere else
// opens the movie.
func (hc *homeController) handleTap(x, y int32) *HomeResult {
	content := contentRect()
	if y < content.Y || y >= content.Y+content.H {
		return nil
	}

	listY := y - content.Y + hc.scrollY
	for i, top := range hc.tops {
		if listY < top || listY >= top+hc.layouts[i].height {
			continue
		}
		hc.focused = i
		if x >= screenMargin+hc.rowWidth()-rowPadding-constants.IconSize-rowPadding && listY < top+collapsedRowHeight() {
			hc.toggleFocused()
			return nil
		}
		return hc.handleButton(constants.VirtualButtonA)
	}
	return nil
}

func (hc *homeController) render() {
	window := internal.GetWindow()
	renderer := window.Renderer
	theme := internal.GetTheme()

	window.Clear(theme.BackgroundColor)

	content := contentRect()
	if len(hc.view.Rows) == 0 {
		drawCentered(hc.view.Empty, content)
	} else {
		renderer.SetClipRect(&content)
		for i, row := range hc.view.Rows {
			y := content.Y + hc.tops[i] - hc.scrollY
			if y+hc.layouts[i].height < content.Y || y > content.Y+content.H {
				continue
			}
			drawRow(row, hc.layouts[i], screenMargin, y, hc.rowWidth(), i == hc.focused)
		}
		renderer.SetClipRect(nil)
	}

	drawTopBar(hc.view.Title, false)
	drawFooter(hc.view.Help)
	window.Present()
}

// HomeScreen shows the movie list.
// This blocks until the user opens a movie or quits. Closing the window
// returns ErrCancelled.
func HomeScreen(home *presenter.Home, options HomeOptions) (*HomeResult, error) {
	hc := newHomeController(home, options.Resume)

	unsubscribe := home.Subscribe(func(expansion.Change) { hc.dirty = true })
	defer unsubscribe()

	images := internal.GetImageLoader()
	window := internal.GetWindow()

	for {
		if event := sdl.WaitEventTimeout(constants.DefaultFrameDelayMilli); event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil, ErrCancelled

			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
					if result := hc.handleTap(e.X, e.Y); result != nil {
						return result, nil
					}
				}

			default:
				inputEvent := internal.ProcessSDLEvent(event)
				if inputEvent == nil || inputEvent.Repeat {
					break
				}
				if !inputEvent.Pressed {
					hc.directionalInput.SetHeld(inputEvent.Button, false)
					break
				}
				hc.directionalInput.SetHeld(inputEvent.Button, true)
				if result := hc.handleButton(inputEvent.Button); result != nil {
					return result, nil
				}
			}
		}

		switch held := hc.directionalInput.Update(); held {
		case constants.VirtualButtonUp, constants.VirtualButtonDown:
			hc.handleButton(held)
		}

		images.Poll(window.Renderer)
		hc.refresh()
		hc.render()
	}
}
