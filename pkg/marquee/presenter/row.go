// Package presenter turns catalog data and navigation state into the view
// models the screens draw, and routes screen events back into the state
// holders. Nothing here knows how anything is rendered.
package presenter

import (
	"github.com/BrandonKowalski/marquee/pkg/marquee/catalog"
	"github.com/BrandonKowalski/marquee/pkg/marquee/expansion"
	"github.com/BrandonKowalski/marquee/pkg/marquee/locale"
)

// Row is one movie row. The Plot, Actors and Rating lines are only meant to be
// drawn when Expanded is true.
type Row struct {
	ID       expansion.RowID
	MovieID  string
	Title    string
	Director string
	Released string
	Poster   string
	Expanded bool

	PlotLabel string
	Plot      string
	Actors    string
	Rating    string
}

// HelpItem is one footer hint, such as button "A" with label "Open".
type HelpItem struct {
	Button string
	Label  string
}

func help(text *locale.Localizer, pairs ...string) []HelpItem {
	items := make([]HelpItem, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, HelpItem{Button: pairs[i], Label: text.Text(pairs[i+1], nil)})
	}
	return items
}

func buildRow(text *locale.Localizer, m catalog.Movie, id expansion.RowID, expanded bool) Row {
	return Row{
		ID:        id,
		MovieID:   m.ID,
		Title:     m.Title,
		Director:  text.Text(locale.DirectorLine, map[string]any{"Director": m.Director}),
		Released:  text.Text(locale.ReleasedLine, map[string]any{"Year": m.Year}),
		Poster:    m.Poster(),
		Expanded:  expanded,
		PlotLabel: text.Text(locale.PlotLabel, nil),
		Plot:      m.Plot,
		Actors:    text.Text(locale.ActorsLine, map[string]any{"Actors": m.Actors}),
		Rating:    text.Text(locale.RatingLine, map[string]any{"Rating": m.Rating}),
	}
}
