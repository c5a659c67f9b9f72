package presenter

import (
	"github.com/BrandonKowalski/marquee/pkg/marquee/catalog"
	"github.com/BrandonKowalski/marquee/pkg/marquee/expansion"
	"github.com/BrandonKowalski/marquee/pkg/marquee/locale"
	"github.com/BrandonKowalski/marquee/pkg/marquee/optional"
	"github.com/BrandonKowalski/marquee/pkg/marquee/router"
)

// DetailsView is everything the details screen draws. When Found is false
// only Title and NotFound are set.
type DetailsView struct {
	Title         string
	Found         bool
	Row           Row
	ImagesHeading string
	Images        []string
	NotFound      string
	Help          []HelpItem
}

// Details presents the movie named by the current route.
type Details struct {
	catalog *catalog.Catalog
	nav     *router.Navigator
	rows    *expansion.Rows
	text    *locale.Localizer

	row         expansion.RowID
	rowFor      optional.Value[string]
	unsubscribe func()
}

// NewDetails wires a Details presenter. Call Close to detach it.
func NewDetails(cat *catalog.Catalog, nav *router.Navigator, text *locale.Localizer) *Details {
	d := &Details{
		catalog: cat,
		nav:     nav,
		rows:    expansion.NewRows(),
		text:    text,
	}
	d.unsubscribe = nav.Subscribe(func(router.Route) { d.unmount() })
	return d
}

func (d *Details) unmount() {
	d.rows.Reset()
	d.rowFor = optional.None[string]()
}

// movieID is the current route's argument; any other screen counts as absent.
func (d *Details) movieID() optional.Value[string] {
	current := d.nav.Current()
	if current.Screen != router.ScreenDetails {
		return optional.None[string]()
	}
	return current.MovieID
}

// View resolves the current route against the catalog. A missing or unknown
// id yields the not-found placeholder.
func (d *Details) View() DetailsView {
	view := DetailsView{
		Title: d.text.Text(locale.DetailsTitle, nil),
	}

	movie, ok := d.catalog.FindByID(d.movieID()).Get()
	if !ok {
		view.NotFound = d.text.Text(locale.MovieNotFound, nil)
		view.Help = help(d.text, "B", locale.HelpBack)
		return view
	}

	if d.rowFor != optional.Some(movie.ID) {
		d.rows.Reset()
		d.row = d.rows.Mount(movie.ID)
		d.rowFor = optional.Some(movie.ID)
	}

	view.Found = true
	view.Row = buildRow(d.text, movie, d.row, d.rows.IsExpanded(d.row))
	view.ImagesHeading = d.text.Text(locale.ImagesHeading, nil)
	view.Images = movie.Images
	view.Help = help(d.text, "X", locale.HelpExpand, "B", locale.HelpBack)
	return view
}

// OnBackTap returns to the previous screen.
func (d *Details) OnBackTap() bool {
	return d.nav.GoBack()
}

// OnRowArrowTap toggles the expansion of the movie row on this screen.
func (d *Details) OnRowArrowTap() bool {
	if !d.rowFor.IsPresent() {
		return false
	}
	return d.rows.Toggle(d.row)
}

// Close detaches the presenter from the navigator.
func (d *Details) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.unmount()
}
