package router

import "fmt"

// ScreenFunc runs a screen until the user does something that leaves it.
// It receives the route it was opened with and the resume state stored on
// its stack entry (nil on a fresh visit), and returns a screen-specific result.
type ScreenFunc func(route Route, resume any) (result any, err error)

// TransitionFunc is called after each screen returns. It applies the result to
// the Navigator (push, pop, save resume state) and returns false to stop the
// router.
type TransitionFunc func(from Route, result any, nav *Navigator) (keepRunning bool)

// Router runs the screen for whatever route is current and hands each result
// to a single transition function, which keeps all routing decisions in one
// place.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	nav        *Navigator
}

// New creates a Router driving nav. A nil nav gets a fresh Navigator.
func New(nav *Navigator) *Router {
	if nav == nil {
		nav = NewNavigator()
	}
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		nav:     nav,
	}
}

// Register adds a screen to the router.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run shows the current route's screen, applies its result, and repeats until
// the transition function returns false or a screen fails.
func (r *Router) Run() error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	for {
		entry := r.nav.CurrentEntry()

		fn, ok := r.screens[entry.Route.Screen]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", entry.Route.Screen)
		}

		result, err := fn(entry.Route, entry.Resume)
		if err != nil {
			return fmt.Errorf("router: screen %s error: %w", entry.Route.Screen, err)
		}

		if !r.transition(entry.Route, result, r.nav) {
			return nil
		}
	}
}

// Navigator returns the navigator the router drives.
func (r *Router) Navigator() *Navigator {
	return r.nav
}
