package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/BrandonKowalski/marquee/pkg/marquee/optional"
)

// ErrUnknownRoute is returned when a path names no known destination.
var ErrUnknownRoute = errors.New("router: unknown route")

// Screen identifies a destination.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenDetails
)

const (
	homePath    = "home"
	detailsPath = "details"
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return homePath
	case ScreenDetails:
		return detailsPath
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Route is a destination plus its argument. Only Details carries a movie id,
// and that id may be absent or unknown to the catalog; screens must cope.
// Routes are comparable with ==.
type Route struct {
	Screen  Screen
	MovieID optional.Value[string]
}

// Home returns the root route.
func Home() Route {
	return Route{Screen: ScreenHome}
}

// Details returns a details route for an optional movie id.
func Details(movieID optional.Value[string]) Route {
	return Route{Screen: ScreenDetails, MovieID: movieID}
}

// DetailsFor returns a details route for a concrete movie id.
func DetailsFor(movieID string) Route {
	return Details(optional.Some(movieID))
}

// Path encodes the route as "home" or "details/{id}", with the id escaped as a
// single path segment. A details route without an id encodes as "details".
func (r Route) Path() string {
	if r.Screen != ScreenDetails {
		return r.Screen.String()
	}
	id, ok := r.MovieID.Get()
	if !ok || id == "" {
		return detailsPath
	}
	return detailsPath + "/" + url.PathEscape(id)
}

func (r Route) String() string {
	return r.Path()
}

// ParsePath decodes a path produced by Path. A leading slash is ignored.
// "details" and "details/" decode to a details route with an absent id.
func ParsePath(path string) (Route, error) {
	p := strings.TrimPrefix(path, "/")

	if p == homePath || p == "" {
		return Home(), nil
	}

	if p == detailsPath {
		return Details(optional.None[string]()), nil
	}

	segment, ok := strings.CutPrefix(p, detailsPath+"/")
	if !ok || strings.Contains(segment, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}

	id, err := url.PathUnescape(segment)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q: %v", ErrUnknownRoute, path, err)
	}
	return Details(optional.FromString(id)), nil
}
