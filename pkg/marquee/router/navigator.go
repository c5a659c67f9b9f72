package router

import (
	"log/slog"

	"github.com/BrandonKowalski/marquee/pkg/marquee/observe"
)

// Navigator is the client-side navigation controller: a Stack rooted at Home
// plus change notification for renderers.
//
// All methods are meant to be called from the UI event loop. Subscribers run
// synchronously inside the call that changed the current route.
type Navigator struct {
	stack   *Stack
	changes observe.Subject[Route]
	logger  *slog.Logger
}

// NewNavigator returns a Navigator whose stack is [Home].
func NewNavigator() *Navigator {
	return &Navigator{
		stack:  NewStack(Home()),
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for navigation debug output.
func (n *Navigator) WithLogger(logger *slog.Logger) *Navigator {
	if logger != nil {
		n.logger = logger
	}
	return n
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() Route {
	return n.stack.Peek().Route
}

// CurrentEntry returns the top stack entry including its resume state.
func (n *Navigator) CurrentEntry() StackEntry {
	return n.stack.Peek()
}

// Depth returns the stack size; it is always at least one.
func (n *Navigator) Depth() int {
	return n.stack.Len()
}

// History returns the routes from root to current.
func (n *Navigator) History() []Route {
	return n.stack.Routes()
}

// NavigateToDetails pushes Details(movieID). The id is not checked against the
// catalog here; the details screen resolves it when it renders.
func (n *Navigator) NavigateToDetails(movieID string) {
	n.Navigate(DetailsFor(movieID))
}

// Navigate pushes route and makes it current.
func (n *Navigator) Navigate(route Route) {
	from := n.Current()
	n.stack.Push(route)
	n.logger.Debug("navigate", "from", from.Path(), "to", route.Path(), "depth", n.stack.Len())
	n.changes.Publish(route)
}

// NavigatePath parses path and navigates to it.
func (n *Navigator) NavigatePath(path string) error {
	route, err := ParsePath(path)
	if err != nil {
		return err
	}
	n.Navigate(route)
	return nil
}

// GoBack pops the current route and reports whether anything changed.
// At the root it is a silent no-op, however often it is called.
func (n *Navigator) GoBack() bool {
	from, ok := n.stack.Pop()
	if !ok {
		n.logger.Debug("back at root ignored", "route", n.Current().Path())
		return false
	}

	to := n.Current()
	n.logger.Debug("navigate back", "from", from.Route.Path(), "to", to.Path(), "depth", n.stack.Len())
	n.changes.Publish(to)
	return true
}

// PopToRoot drops every route above Home.
func (n *Navigator) PopToRoot() {
	if n.stack.IsRoot() {
		return
	}
	n.stack.Truncate()
	n.changes.Publish(n.Current())
}

// SaveResume stores resume state on the current entry so the screen can
// restore itself when it becomes current again.
func (n *Navigator) SaveResume(resume any) {
	n.stack.SetResume(resume)
}

// Subscribe registers fn to be called with the new current route after every
// change. Absorbed back presses do not notify.
func (n *Navigator) Subscribe(fn func(Route)) (unsubscribe func()) {
	return n.changes.Subscribe(fn)
}
