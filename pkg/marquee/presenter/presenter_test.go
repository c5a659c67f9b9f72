package presenter

import (
	"reflect"
	"testing"

	"github.com/BrandonKowalski/marquee/pkg/marquee/catalog"
	"github.com/BrandonKowalski/marquee/pkg/marquee/locale"
	"github.com/BrandonKowalski/marquee/pkg/marquee/optional"
	"github.com/BrandonKowalski/marquee/pkg/marquee/router"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Movie{
		{
			ID: "tt0499549", Title: "Avatar", Director: "James Cameron", Year: "2009",
			Plot: "A paraplegic marine.", Actors: "Sam Worthington", Rating: "7.9",
			Images: []string{"avatar/poster.jpg", "avatar/1.jpg"},
		},
		{
			ID: "tt0416449", Title: "300", Director: "Zack Snyder", Year: "2006",
			Images: []string{"300/poster.jpg"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestHomeView(t *testing.T) {
	nav := router.NewNavigator()
	home := NewHome(testCatalog(t), nav, locale.English())
	defer home.Close()

	view := home.View()
	if view.Title != "Movies" {
		t.Errorf("Title = %q", view.Title)
	}
	if len(view.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(view.Rows))
	}

	row := view.Rows[0]
	want := Row{
		ID:        row.ID,
		MovieID:   "tt0499549",
		Title:     "Avatar",
		Director:  "Director: James Cameron",
		Released:  "Released: 2009",
		Poster:    "avatar/poster.jpg",
		PlotLabel: "Plot: ",
		Plot:      "A paraplegic marine.",
		Actors:    "Actors: Sam Worthington",
		Rating:    "Rating: 7.9",
	}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("Rows[0] = %+v\nwant %+v", row, want)
	}
	if view.Empty != "" {
		t.Errorf("Empty = %q on a non-empty catalog", view.Empty)
	}
}

func TestHomeRowTapNavigates(t *testing.T) {
	nav := router.NewNavigator()
	home := NewHome(testCatalog(t), nav, locale.English())
	defer home.Close()

	row := home.View().Rows[1]
	home.OnRowTap(row.MovieID)

	if nav.Current() != router.DetailsFor("tt0416449") {
		t.Errorf("Current() = %v, want details/tt0416449", nav.Current())
	}
}

func TestHomeArrowTapTogglesOneRow(t *testing.T) {
	nav := router.NewNavigator()
	home := NewHome(testCatalog(t), nav, locale.English())
	defer home.Close()

	rows := home.View().Rows
	if !home.OnRowArrowTap(rows[0].ID) {
		t.Fatal("OnRowArrowTap = false, want true")
	}

	rows = home.View().Rows
	if !rows[0].Expanded || rows[1].Expanded {
		t.Errorf("expanded = [%v %v], want [true false]", rows[0].Expanded, rows[1].Expanded)
	}

	home.OnRowArrowTap(rows[0].ID)
	if home.View().Rows[0].Expanded {
		t.Error("row still expanded after second tap")
	}
}

func TestHomeRowsResetAfterNavigation(t *testing.T) {
	nav := router.NewNavigator()
	home := NewHome(testCatalog(t), nav, locale.English())
	defer home.Close()

	first := home.View().Rows[0]
	home.OnRowArrowTap(first.ID)

	home.OnRowTap(first.MovieID)
	nav.GoBack()

	again := home.View().Rows[0]
	if again.Expanded {
		t.Error("row kept its expansion across navigation")
	}
	if again.ID == first.ID {
		t.Error("row was not remounted")
	}
	if home.OnRowArrowTap(first.ID) {
		t.Error("stale row id still toggles")
	}
}

func TestHomeEmptyCatalog(t *testing.T) {
	empty, err := catalog.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	home := NewHome(empty, router.NewNavigator(), locale.English())
	defer home.Close()

	view := home.View()
	if len(view.Rows) != 0 || view.Empty != "No movies" {
		t.Errorf("View() = %+v", view)
	}
}

func TestDetailsView(t *testing.T) {
	nav := router.NewNavigator()
	details := NewDetails(testCatalog(t), nav, locale.English())
	defer details.Close()

	nav.NavigateToDetails("tt0499549")
	view := details.View()

	if !view.Found {
		t.Fatal("Found = false for a catalog id")
	}
	if view.Title != "Details" || view.ImagesHeading != "Images" {
		t.Errorf("Title=%q ImagesHeading=%q", view.Title, view.ImagesHeading)
	}
	if view.Row.Title != "Avatar" || view.Row.Expanded {
		t.Errorf("Row = %+v", view.Row)
	}
	if want := []string{"avatar/poster.jpg", "avatar/1.jpg"}; !reflect.DeepEqual(view.Images, want) {
		t.Errorf("Images = %v, want %v", view.Images, want)
	}
}

func TestDetailsPlaceholder(t *testing.T) {
	testCases := []struct {
		name  string
		route router.Route
	}{
		{"absent id", router.Details(optional.None[string]())},
		{"unknown id", router.DetailsFor("missing")},
		{"empty id", router.DetailsFor("")},
	}

	for _, tc := range testCases {
		nav := router.NewNavigator()
		details := NewDetails(testCatalog(t), nav, locale.English())

		nav.Navigate(tc.route)
		view := details.View()

		if view.Found {
			t.Errorf("%s: Found = true", tc.name)
		}
		if view.NotFound != "Movie not found" || view.Title != "Details" {
			t.Errorf("%s: View() = %+v", tc.name, view)
		}
		if details.OnRowArrowTap() {
			t.Errorf("%s: OnRowArrowTap on placeholder = true", tc.name)
		}
		details.Close()
	}
}

func TestDetailsOffDetailsRoute(t *testing.T) {
	details := NewDetails(testCatalog(t), router.NewNavigator(), locale.English())
	defer details.Close()

	if details.View().Found {
		t.Error("Found = true while Home is current")
	}
}

func TestDetailsBackTap(t *testing.T) {
	nav := router.NewNavigator()
	details := NewDetails(testCatalog(t), nav, locale.English())
	defer details.Close()

	nav.NavigateToDetails("tt0416449")
	if !details.OnBackTap() {
		t.Error("OnBackTap from details = false")
	}
	if nav.Current() != router.Home() {
		t.Errorf("Current() = %v, want home", nav.Current())
	}
	if details.OnBackTap() {
		t.Error("OnBackTap at root = true")
	}
}

func TestDetailsRowToggleResetsPerVisit(t *testing.T) {
	nav := router.NewNavigator()
	details := NewDetails(testCatalog(t), nav, locale.English())
	defer details.Close()

	nav.NavigateToDetails("tt0499549")
	details.View()
	if !details.OnRowArrowTap() {
		t.Fatal("OnRowArrowTap = false")
	}
	if !details.View().Row.Expanded {
		t.Fatal("row not expanded after toggle")
	}

	nav.GoBack()
	nav.NavigateToDetails("tt0499549")
	if details.View().Row.Expanded {
		t.Error("row expansion survived leaving the screen")
	}
}

func TestSpanishLabels(t *testing.T) {
	text, err := locale.New("es")
	if err != nil {
		t.Fatal(err)
	}
	nav := router.NewNavigator()
	home := NewHome(testCatalog(t), nav, text)
	defer home.Close()

	view := home.View()
	if view.Title != "Películas" || view.Rows[0].Released != "Estreno: 2009" {
		t.Errorf("View() = %q / %q", view.Title, view.Rows[0].Released)
	}
}

func TestHelpItems(t *testing.T) {
	nav := router.NewNavigator()
	home := NewHome(testCatalog(t), nav, locale.English())
	details := NewDetails(testCatalog(t), nav, locale.English())
	defer home.Close()
	defer details.Close()

	wantHome := []HelpItem{{"A", "Open"}, {"X", "More"}, {"B", "Quit"}}
	if got := home.View().Help; !reflect.DeepEqual(got, wantHome) {
		t.Errorf("home Help = %v, want %v", got, wantHome)
	}

	nav.NavigateToDetails("tt0499549")
	wantDetails := []HelpItem{{"X", "More"}, {"B", "Back"}}
	if got := details.View().Help; !reflect.DeepEqual(got, wantDetails) {
		t.Errorf("details Help = %v, want %v", got, wantDetails)
	}

	nav.NavigateToDetails("missing")
	wantMissing := []HelpItem{{"B", "Back"}}
	if got := details.View().Help; !reflect.DeepEqual(got, wantMissing) {
		t.Errorf("placeholder Help = %v, want %v", got, wantMissing)
	}
}
