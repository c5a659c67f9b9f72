package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are the point sizes of the three text styles.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  26,
	Medium: 20,
	Small:  15,
}

type fontsCollection struct {
	LargeFont  *ttf.Font // Row titles, top bar
	MediumFont *ttf.Font // Section headings
	SmallFont  *ttf.Font // Captions, plot, footer
}

// Fonts holds the loaded fonts. Populated by Init.
var Fonts fontsCollection

func initFonts(path string) error {
	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, NewInfraError("open_font", err)
		}
		return font, nil
	}

	var err error
	if Fonts.LargeFont, err = open(DefaultFontSizes.Large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(DefaultFontSizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(DefaultFontSizes.Small); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsCollection{}
}
