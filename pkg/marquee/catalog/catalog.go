package catalog

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/marquee/pkg/marquee/optional"
)

var (
	ErrEmptyID     = errors.New("catalog: movie id is empty")
	ErrDuplicateID = errors.New("catalog: duplicate movie id")
	ErrNoImages    = errors.New("catalog: movie has no images")
)

// Catalog is an ordered, read-only collection of movies with lookup by id.
// It is built once and never mutated, so it is safe to share.
type Catalog struct {
	movies []Movie
	index  map[string]int
}

// New builds a Catalog from movies in declaration order.
// Every id must be non-empty and unique, and every movie needs at least one image.
func New(movies []Movie) (*Catalog, error) {
	c := &Catalog{
		movies: make([]Movie, 0, len(movies)),
		index:  make(map[string]int, len(movies)),
	}

	for i, m := range movies {
		if m.ID == "" {
			return nil, fmt.Errorf("%w (entry %d, %q)", ErrEmptyID, i, m.Title)
		}
		if _, exists := c.index[m.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
		if len(m.Images) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoImages, m.ID)
		}

		c.index[m.ID] = len(c.movies)
		c.movies = append(c.movies, m.clone())
	}

	return c, nil
}

// List returns every movie in declaration order.
func (c *Catalog) List() []Movie {
	if c == nil {
		return nil
	}

	out := make([]Movie, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.clone()
	}
	return out
}

// FindByID returns the movie with the given id.
// An absent id, an unknown id, or a nil Catalog all yield an absent result.
func (c *Catalog) FindByID(id optional.Value[string]) optional.Value[Movie] {
	key, ok := id.Get()
	if !ok || c == nil {
		return optional.None[Movie]()
	}

	i, ok := c.index[key]
	if !ok {
		return optional.None[Movie]()
	}
	return optional.Some(c.movies[i].clone())
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}
