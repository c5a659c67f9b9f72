package marquee

import (
	"strings"

	"github.com/BrandonKowalski/marquee/pkg/marquee/constants"
	"github.com/BrandonKowalski/marquee/pkg/marquee/internal"
	"github.com/BrandonKowalski/marquee/pkg/marquee/presenter"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenMargin   int32 = 8
	rowPadding     int32 = 10
	dividerGap     int32 = 6
	focusThickness int32 = 3
	footerGap            = "    "
)

// rowLayout is a measured row. Expanded rows carry their wrapped plot.
type rowLayout struct {
	height    int32
	plotLines []string
}

func collapsedRowHeight() int32 {
	return constants.RowPosterSize + 2*rowPadding
}

func measureRow(row presenter.Row, width int32) rowLayout {
	layout := rowLayout{height: collapsedRowHeight()}
	if !row.Expanded {
		return layout
	}

	font := internal.Fonts.SmallFont
	lineHeight := int32(font.Height())
	layout.plotLines = internal.WrapText(font, row.PlotLabel+row.Plot, width-2*rowPadding)

	layout.height += 2*dividerGap + 1
	layout.height += int32(len(layout.plotLines)) * lineHeight
	layout.height += 2*dividerGap + 1
	layout.height += 2*lineHeight + rowPadding
	return layout
}

// drawRow draws a movie card at (x, y) and returns its height.
func drawRow(row presenter.Row, layout rowLayout, x, y, width int32, focused bool) int32 {
	window := internal.GetWindow()
	renderer := window.Renderer
	theme := internal.GetTheme()
	fonts := internal.Fonts

	card := sdl.Rect{X: x, Y: y, W: width, H: layout.height}
	window.FillRect(card, theme.CardColor)
	if focused {
		window.OutlineRect(card, focusThickness, theme.FocusColor)
	}

	poster := sdl.Rect{X: x + rowPadding, Y: y + rowPadding, W: constants.RowPosterSize, H: constants.RowPosterSize}
	drawImage(row.Poster, poster)

	iconSize := constants.IconSize
	textX := poster.X + poster.W + rowPadding
	textWidth := x + width - textX - iconSize - 2*rowPadding

	textY := y + rowPadding
	textY += internal.DrawText(renderer, row.Title, fonts.LargeFont, theme.TextColor, textX, textY, textWidth)
	textY += internal.DrawText(renderer, row.Director, fonts.SmallFont, theme.CaptionColor, textX, textY, textWidth)
	internal.DrawText(renderer, row.Released, fonts.SmallFont, theme.CaptionColor, textX, textY, textWidth)

	arrow := constants.ArrowDownIcon
	if row.Expanded {
		arrow = constants.ArrowUpIcon
	}
	iconRect := sdl.Rect{
		X: x + width - rowPadding - iconSize,
		Y: y + (collapsedRowHeight()-iconSize)/2,
		W: iconSize,
		H: iconSize,
	}
	internal.GetIcons().Draw(arrow, iconRect, theme.TextColor)

	if !row.Expanded {
		return layout.height
	}

	innerX := x + rowPadding
	innerWidth := width - 2*rowPadding
	lineHeight := int32(fonts.SmallFont.Height())

	cursor := y + collapsedRowHeight() + dividerGap
	window.FillRect(sdl.Rect{X: innerX, Y: cursor, W: innerWidth, H: 1}, theme.DividerColor)
	cursor += 1 + dividerGap

	for _, line := range layout.plotLines {
		internal.DrawText(renderer, line, fonts.SmallFont, theme.PlotColor, innerX, cursor, innerWidth)
		cursor += lineHeight
	}

	cursor += dividerGap
	window.FillRect(sdl.Rect{X: innerX, Y: cursor, W: innerWidth, H: 1}, theme.DividerColor)
	cursor += 1 + dividerGap

	internal.DrawText(renderer, row.Actors, fonts.SmallFont, theme.CaptionColor, innerX, cursor, innerWidth)
	cursor += lineHeight
	internal.DrawText(renderer, row.Rating, fonts.SmallFont, theme.CaptionColor, innerX, cursor, innerWidth)

	return layout.height
}

// drawImage draws the image at path fitted into rect, or a placeholder box
// while it is loading or if it failed.
func drawImage(path string, rect sdl.Rect) {
	window := internal.GetWindow()
	theme := internal.GetTheme()

	texture := internal.GetImageLoader().Texture(path)
	if texture == nil {
		window.FillRect(rect, theme.PlaceholderFill)
		size := min(rect.W, rect.H) / 3
		icon := sdl.Rect{X: rect.X + (rect.W-size)/2, Y: rect.Y + (rect.H-size)/2, W: size, H: size}
		internal.GetIcons().Draw(constants.ImagePlaceholderIcon, icon, theme.CaptionColor)
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil || w == 0 || h == 0 {
		window.FillRect(rect, theme.PlaceholderFill)
		return
	}

	dst := fitRect(w, h, rect)
	window.Renderer.Copy(texture, nil, &dst)
}

// fitRect scales a w x h image to fit inside bounds, centered, keeping its
// aspect ratio.
func fitRect(w, h int32, bounds sdl.Rect) sdl.Rect {
	scaleW := float64(bounds.W) / float64(w)
	scaleH := float64(bounds.H) / float64(h)
	scale := min(scaleW, scaleH)

	dw := int32(float64(w) * scale)
	dh := int32(float64(h) * scale)
	return sdl.Rect{
		X: bounds.X + (bounds.W-dw)/2,
		Y: bounds.Y + (bounds.H-dh)/2,
		W: dw,
		H: dh,
	}
}

// drawTopBar draws the accent bar with its title. With a back arrow it returns
// the arrow's rect.
func drawTopBar(title string, withBack bool) sdl.Rect {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	font := internal.Fonts.LargeFont

	bar := sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: constants.TopBarHeight}
	window.FillRect(bar, theme.TopBarColor)

	textX := 2 * screenMargin
	var back sdl.Rect
	if withBack {
		size := constants.IconSize
		back = sdl.Rect{X: textX, Y: (constants.TopBarHeight - size) / 2, W: size, H: size}
		internal.GetIcons().Draw(constants.ArrowBackIcon, back, theme.TopBarTextColor)
		textX += size + 2*screenMargin
	}

	textY := (constants.TopBarHeight - int32(font.Height())) / 2
	internal.DrawText(window.Renderer, title, font, theme.TopBarTextColor, textX, textY, bar.W-textX-screenMargin)
	return back
}

func drawFooter(items []presenter.HelpItem) {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont

	y := window.GetHeight() - constants.FooterHeight
	window.FillRect(sdl.Rect{X: 0, Y: y, W: window.GetWidth(), H: 1}, theme.DividerColor)

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Button+" "+item.Label)
	}
	text := strings.Join(parts, footerGap)

	textY := y + (constants.FooterHeight-int32(font.Height()))/2
	internal.DrawText(window.Renderer, text, font, theme.HintColor, 2*screenMargin, textY, window.GetWidth()-4*screenMargin)
}

// drawCentered draws a single line centered in rect.
func drawCentered(text string, rect sdl.Rect) {
	window := internal.GetWindow()
	font := internal.Fonts.MediumFont

	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return
	}
	x := rect.X + (rect.W-int32(w))/2
	y := rect.Y + (rect.H-int32(h))/2
	internal.DrawText(window.Renderer, text, font, internal.GetTheme().CaptionColor, max(x, rect.X), y, rect.W)
}

// contentRect is the area between the top bar and the footer.
func contentRect() sdl.Rect {
	window := internal.GetWindow()
	return sdl.Rect{
		X: 0,
		Y: constants.TopBarHeight,
		W: window.GetWidth(),
		H: window.GetHeight() - constants.TopBarHeight - constants.FooterHeight,
	}
}
