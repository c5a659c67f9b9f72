package marquee

import (
	"log/slog"

	"github.com/BrandonKowalski/marquee/pkg/marquee/catalog"
	"github.com/BrandonKowalski/marquee/pkg/marquee/locale"
	"github.com/BrandonKowalski/marquee/pkg/marquee/presenter"
	"github.com/BrandonKowalski/marquee/pkg/marquee/router"
)

// App wires the catalog, navigator and presenters to the two screens.
type App struct {
	nav     *router.Navigator
	home    *presenter.Home
	details *presenter.Details
	logger  *slog.Logger
}

// NewApp builds an App whose navigator starts at Home.
func NewApp(cat *catalog.Catalog, text *locale.Localizer, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	nav := router.NewNavigator().WithLogger(logger)
	return &App{
		nav:     nav,
		home:    presenter.NewHome(cat, nav, text),
		details: presenter.NewDetails(cat, nav, text),
		logger:  logger,
	}
}

// Navigator returns the app's navigation controller.
func (a *App) Navigator() *router.Navigator {
	return a.nav
}

// Open pushes a route given as a path, for example "details/tt0499549".
// Home stays underneath so back always returns to the list.
func (a *App) Open(path string) error {
	route, err := router.ParsePath(path)
	if err != nil {
		return err
	}
	if route.Screen == router.ScreenHome {
		a.nav.PopToRoot()
		return nil
	}
	return a.nav.NavigatePath(path)
}

// Run shows screens until the user quits. Init must have been called.
// A closed window ends Run with an error matching ErrCancelled.
func (a *App) Run() error {
	return router.New(a.nav).
		Register(router.ScreenHome, a.showHome).
		Register(router.ScreenDetails, a.showDetails).
		OnTransition(a.transition).
		Run()
}

func (a *App) showHome(_ router.Route, resume any) (any, error) {
	var options HomeOptions
	if r, ok := resume.(HomeResume); ok {
		options.Resume = &r
	}
	return HomeScreen(a.home, options)
}

func (a *App) showDetails(_ router.Route, _ any) (any, error) {
	return DetailsScreen(a.details)
}

func (a *App) transition(from router.Route, result any, nav *router.Navigator) bool {
	switch r := result.(type) {
	case *HomeResult:
		nav.SaveResume(r.Resume)
		if r.Action == HomeActionSelected {
			a.home.OnRowTap(r.MovieID)
			return true
		}

	case *DetailsResult:
		if r.Action == DetailsActionBack {
			a.details.OnBackTap()
			return true
		}

	default:
		a.logger.Error("unexpected screen result", "route", from.Path(), "result", result)
		return false
	}

	a.logger.Info("quit", "route", from.Path())
	return false
}

// Close detaches the presenters from the navigator.
func (a *App) Close() {
	a.home.Close()
	a.details.Close()
}
