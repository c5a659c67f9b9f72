package marquee

import (
	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/BrandonKowalski/marquee/pkg/marquee/internal"
	"github.com/BrandonKowalski/marquee/pkg/marquee/presenter"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	galleryGap   int32 = 10
	scrollStep   int32 = 40
	headingSpace int32 = 8
)

type detailsController struct {
	presenter *presenter.Details
	view      presenter.DetailsView
	layout    rowLayout

	scrollY       int32
	contentHeight int32
	selected      int   // focused gallery image
	galleryX      int32 // horizontal scroll of the gallery strip
	backRect      sdl.Rect

	directionalInput internal.DirectionalInput
}

func newDetailsController(details *presenter.Details) *detailsController {
	dc := &detailsController{
		presenter:        details,
		directionalInput: internal.NewDirectionalInput(),
	}
	dc.refresh()
	return dc
}

func (dc *detailsController) refresh() {
	dc.view = dc.presenter.View()
	if !dc.view.Found {
		return
	}

	width := internal.GetWindow().GetWidth() - 2*screenMargin
	dc.layout = measureRow(dc.view.Row, width)

	headingHeight := int32(internal.Fonts.MediumFont.Height())
	dc.contentHeight = constants.RowSpacing + dc.layout.height +
		2*dividerGap + 1 +
		headingHeight + headingSpace +
		constants.GalleryImageSize + constants.RowSpacing
	dc.clampScroll()
}

func (dc *detailsController) clampScroll() {
	maxScroll := max(dc.contentHeight-contentRect().H, 0)
	dc.scrollY = min(max(dc.scrollY, 0), maxScroll)
}

func (dc *detailsController) moveImage(delta int) {
	n := len(dc.view.Images)
	if n == 0 {
		return
	}
	dc.selected = min(max(dc.selected+delta, 0), n-1)

	viewport := internal.GetWindow().GetWidth() - 2*screenMargin
	left := int32(dc.selected) * (constants.GalleryImageSize + galleryGap)
	right := left + constants.GalleryImageSize
	if left < dc.galleryX {
		dc.galleryX = left
	} else if right-dc.galleryX > viewport {
		dc.galleryX = right - viewport
	}
}

func (dc *detailsController) toggleRow() {
	dc.presenter.OnRowArrowTap()
	dc.refresh()
}

func (dc *detailsController) handleButton(button constants.VirtualButton) *DetailsResult {
	switch button {
	case constants.VirtualButtonB:
		return &DetailsResult{Action: DetailsActionBack}
	case constants.VirtualButtonX, constants.VirtualButtonA:
		if dc.view.Found {
			dc.toggleRow()
		}
	case constants.VirtualButtonLeft:
		dc.moveImage(-1)
	case constants.VirtualButtonRight:
		dc.moveImage(1)
	case constants.VirtualButtonUp:
		dc.scrollY -= scrollStep
		dc.clampScroll()
	case constants.VirtualButtonDown:
		dc.scrollY += scrollStep
		dc.clampScroll()
	}
	return nil
}

func (dc *detailsController) handleTap(x, y int32) *DetailsResult {
	p := sdl.Point{X: x, Y: y}
	if y < constants.TopBarHeight {
		hit := dc.backRect
		hit.X -= screenMargin
		hit.Y -= screenMargin
		hit.W += 2 * screenMargin
		hit.H += 2 * screenMargin
		if p.InRect(&hit) {
			return &DetailsResult{Action: DetailsActionBack}
		}
		return nil
	}

	if !dc.view.Found {
		return nil
	}
	rowTop := contentRect().Y + constants.RowSpacing - dc.scrollY
	if y >= rowTop && y < rowTop+collapsedRowHeight() {
		dc.toggleRow()
	}
	return nil
}

func (dc *detailsController) render() {
	window := internal.GetWindow()
	renderer := window.Renderer
	theme := internal.GetTheme()
	fonts := internal.Fonts

	window.Clear(theme.BackgroundColor)

	content := contentRect()
	if !dc.view.Found {
		drawCentered(dc.view.NotFound, content)
	} else {
		renderer.SetClipRect(&content)

		width := window.GetWidth() - 2*screenMargin
		y := content.Y + constants.RowSpacing - dc.scrollY
		y += drawRow(dc.view.Row, dc.layout, screenMargin, y, width, false)

		y += dividerGap
		window.FillRect(sdl.Rect{X: screenMargin, Y: y, W: width, H: 1}, theme.DividerColor)
		y += 1 + dividerGap

		y += internal.DrawText(renderer, dc.view.ImagesHeading, fonts.MediumFont, theme.TextColor, screenMargin, y, width)
		y += headingSpace

		gallery := sdl.Rect{X: screenMargin, Y: y, W: width, H: constants.GalleryImageSize}
		clip, _ := gallery.Intersect(&content)
		renderer.SetClipRect(&clip)
		for i, path := range dc.view.Images {
			x := gallery.X + int32(i)*(constants.GalleryImageSize+galleryGap) - dc.galleryX
			if x+constants.GalleryImageSize < gallery.X || x > gallery.X+gallery.W {
				continue
			}
			rect := sdl.Rect{X: x, Y: y, W: constants.GalleryImageSize, H: constants.GalleryImageSize}
			drawImage(path, rect)
			if i == dc.selected {
				window.OutlineRect(rect, focusThickness, theme.FocusColor)
			}
		}
		renderer.SetClipRect(nil)
	}

	dc.backRect = drawTopBar(dc.view.Title, true)
	drawFooter(dc.view.Help)
	window.Present()
}

// DetailsScreen shows the movie named by the current route, or the not-found
// placeholder. This blocks until the user goes back. Closing the window
// returns ErrCancelled.
func DetailsScreen(details *presenter.Details) (*DetailsResult, error) {
	dc := newDetailsController(details)

	images := internal.GetImageLoader()
	window := internal.GetWindow()

	for {
		if event := sdl.WaitEventTimeout(constants.DefaultFrameDelayMilli); event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil, ErrCancelled

			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
					if result := dc.handleTap(e.X, e.Y); result != nil {
						return result, nil
					}
				}

			default:
				inputEvent := internal.ProcessSDLEvent(event)
				if inputEvent == nil || inputEvent.Repeat {
					break
				}
				if !inputEvent.Pressed {
					dc.directionalInput.SetHeld(inputEvent.Button, false)
					break
				}
				dc.directionalInput.SetHeld(inputEvent.Button, true)
				if result := dc.handleButton(inputEvent.Button); result != nil {
					return result, nil
				}
			}
		}

		if held := dc.directionalInput.Update(); held != constants.VirtualButtonUnassigned {
			dc.handleButton(held)
		}

		images.Poll(window.Renderer)
		dc.render()
	}
}
