package marquee

import (
	"testing"

	"github.com/BrandonKowalski/marquee/pkg/marquee/catalog"
	"github.com/BrandonKowalski/marquee/pkg/marquee/locale"
	"github.com/BrandonKowalski/marquee/pkg/marquee/router"
	"github.com/veandco/go-sdl2/sdl"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(catalog.Default(), locale.English(), nil)
	t.Cleanup(app.Close)
	return app
}

func TestTransitionSelectSavesResumeAndOpensDetails(t *testing.T) {
	app := newTestApp(t)
	nav := app.Navigator()

	resume := HomeResume{Focused: 3, ScrollY: 120}
	keepRunning := app.transition(router.Home(), &HomeResult{
		Action:  HomeActionSelected,
		MovieID: "tt0499549",
		Resume:  resume,
	}, nav)

	if !keepRunning {
		t.Fatal("transition stopped after a selection")
	}
	if nav.Current() != router.DetailsFor("tt0499549") {
		t.Errorf("Current() = %v", nav.Current())
	}

	keepRunning = app.transition(nav.Current(), &DetailsResult{Action: DetailsActionBack}, nav)
	if !keepRunning {
		t.Fatal("transition stopped after back")
	}
	entry := nav.CurrentEntry()
	if entry.Route != router.Home() {
		t.Errorf("Current() = %v after back, want home", entry.Route)
	}
	if entry.Resume != resume {
		t.Errorf("Resume = %v, want %v", entry.Resume, resume)
	}
}

func TestTransitionQuit(t *testing.T) {
	testCases := []struct {
		name   string
		setup  func(*router.Navigator)
		result any
	}{
		{"home quit", func(*router.Navigator) {}, &HomeResult{Action: HomeActionQuit}},
		{"unknown details action", func(n *router.Navigator) { n.NavigateToDetails("tt0499549") }, &DetailsResult{Action: DetailsAction(-1)}},
		{"unknown result", func(*router.Navigator) {}, "nonsense"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			tc.setup(app.Navigator())
			if app.transition(app.Navigator().Current(), tc.result, app.Navigator()) {
				t.Error("transition kept running")
			}
		})
	}
}

func TestOpen(t *testing.T) {
	app := newTestApp(t)
	nav := app.Navigator()

	if err := app.Open("details/tt0416449"); err != nil {
		t.Fatal(err)
	}
	if nav.Depth() != 2 || nav.Current() != router.DetailsFor("tt0416449") {
		t.Errorf("History() = %v", nav.History())
	}

	if err := app.Open("home"); err != nil {
		t.Fatal(err)
	}
	if nav.Depth() != 1 {
		t.Errorf("Depth() = %d after opening home, want 1", nav.Depth())
	}

	if err := app.Open("settings"); err == nil {
		t.Error("Open(settings) succeeded")
	}
}

func TestFitRect(t *testing.T) {
	testCases := []struct {
		w, h int32
		want [4]int32
	}{
		{200, 100, [4]int32{0, 25, 100, 50}},
		{100, 200, [4]int32{25, 0, 50, 100}},
		{50, 50, [4]int32{0, 0, 100, 100}},
	}

	for _, tc := range testCases {
		got := fitRect(tc.w, tc.h, sdl.Rect{W: 100, H: 100})
		if [4]int32{got.X, got.Y, got.W, got.H} != tc.want {
			t.Errorf("fitRect(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestCancelledSurvivesRouterWrapping(t *testing.T) {
	err := router.New(nil).
		Register(router.ScreenHome, func(router.Route, any) (any, error) { return nil, ErrCancelled }).
		OnTransition(func(router.Route, any, *router.Navigator) bool { return true }).
		Run()

	if !IsCancelled(err) {
		t.Errorf("IsCancelled(%v) = false", err)
	}
	if IsInfrastructureError(err) {
		t.Errorf("IsInfrastructureError(%v) = true", err)
	}
	if !IsInfrastructureError(NewInfrastructureError("open_font", err)) {
		t.Error("IsInfrastructureError(NewInfrastructureError(...)) = false")
	}
}
