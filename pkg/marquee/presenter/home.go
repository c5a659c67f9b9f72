package presenter

import (
	"github.com/BrandonKowalski/marquee/pkg/marquee/catalog"
	"github.com/BrandonKowalski/marquee/pkg/marquee/expansion"
	"github.com/BrandonKowalski/marquee/pkg/marquee/locale"
	"github.com/BrandonKowalski/marquee/pkg/marquee/router"
)

// HomeView is everything the list screen draws.
type HomeView struct {
	Title string
	Rows  []Row
	Empty string // shown instead of rows when the catalog is empty
	Help  []HelpItem
}

type mountedRow struct {
	id    expansion.RowID
	movie catalog.Movie
}

// Home presents the movie list.
//
// Rows are mounted while Home is the current route and discarded as soon as
// the navigator moves away, so coming back shows every row collapsed.
type Home struct {
	catalog *catalog.Catalog
	nav     *router.Navigator
	rows    *expansion.Rows
	text    *locale.Localizer

	mounted     []mountedRow
	unsubscribe func()
}

// NewHome wires a Home presenter to its collaborators. Call Close to detach
// it from the navigator.
func NewHome(cat *catalog.Catalog, nav *router.Navigator, text *locale.Localizer) *Home {
	h := &Home{
		catalog: cat,
		nav:     nav,
		rows:    expansion.NewRows(),
		text:    text,
	}
	h.unsubscribe = nav.Subscribe(h.onRouteChange)
	return h
}

func (h *Home) onRouteChange(current router.Route) {
	if current.Screen != router.ScreenHome {
		h.unmount()
	}
}

func (h *Home) mount() {
	h.unmount()
	for _, m := range h.catalog.List() {
		h.mounted = append(h.mounted, mountedRow{id: h.rows.Mount(m.ID), movie: m})
	}
}

func (h *Home) unmount() {
	h.rows.Reset()
	h.mounted = nil
}

// View returns the list, mounting rows first if the list is not on screen yet.
func (h *Home) View() HomeView {
	if h.mounted == nil {
		h.mount()
	}

	view := HomeView{
		Title: h.text.Text(locale.HomeTitle, nil),
		Rows:  make([]Row, 0, len(h.mounted)),
	}
	for _, r := range h.mounted {
		view.Rows = append(view.Rows, buildRow(h.text, r.movie, r.id, h.rows.IsExpanded(r.id)))
	}
	if len(view.Rows) == 0 {
		view.Empty = h.text.Text(locale.EmptyCatalog, nil)
		view.Help = help(h.text, "B", locale.HelpQuit)
	} else {
		view.Help = help(h.text, "A", locale.HelpOpen, "X", locale.HelpExpand, "B", locale.HelpQuit)
	}
	return view
}

// OnRowTap opens the details screen for movieID.
func (h *Home) OnRowTap(movieID string) {
	h.nav.NavigateToDetails(movieID)
}

// OnRowArrowTap toggles a row's expansion and returns its new state.
func (h *Home) OnRowArrowTap(row expansion.RowID) bool {
	return h.rows.Toggle(row)
}

// Subscribe notifies fn whenever a row is toggled.
func (h *Home) Subscribe(fn func(expansion.Change)) (unsubscribe func()) {
	return h.rows.Subscribe(fn)
}

// Close detaches the presenter from the navigator.
func (h *Home) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
	h.unmount()
}
