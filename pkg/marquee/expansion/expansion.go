// Package expansion tracks the expand/collapse state of list rows.
//
// State belongs to a row instance, not to a movie: every time the list is
// shown its rows are mounted again and start collapsed.
package expansion

import (
	"github.com/google/uuid"

	"github.com/BrandonKowalski/marquee/pkg/marquee/observe"
)

// RowID identifies one mounted row instance.
type RowID uuid.UUID

func (id RowID) String() string {
	return uuid.UUID(id).String()
}

// Change is published whenever a row is toggled.
type Change struct {
	Row      RowID
	MovieID  string
	Expanded bool
}

type row struct {
	movieID  string
	expanded bool
}

// Rows holds the expansion flag of every mounted row. Toggling one row never
// touches another, even when both show the same movie.
type Rows struct {
	rows    map[RowID]*row
	changes observe.Subject[Change]
}

// NewRows returns an empty set of rows.
func NewRows() *Rows {
	return &Rows{rows: make(map[RowID]*row)}
}

// Mount creates a collapsed row instance for movieID and returns its id.
func (r *Rows) Mount(movieID string) RowID {
	id := RowID(uuid.New())
	r.rows[id] = &row{movieID: movieID}
	return id
}

// Unmount discards a row's state.
func (r *Rows) Unmount(id RowID) {
	delete(r.rows, id)
}

// Reset discards every row, as when the list leaves the screen.
func (r *Rows) Reset() {
	clear(r.rows)
}

// Toggle flips the row's flag and returns the new value.
// Toggling a row that is not mounted does nothing and returns false.
func (r *Rows) Toggle(id RowID) bool {
	rw, ok := r.rows[id]
	if !ok {
		return false
	}

	rw.expanded = !rw.expanded
	r.changes.Publish(Change{Row: id, MovieID: rw.movieID, Expanded: rw.expanded})
	return rw.expanded
}

// IsExpanded reports the row's flag; unknown rows are collapsed.
func (r *Rows) IsExpanded(id RowID) bool {
	rw, ok := r.rows[id]
	return ok && rw.expanded
}

// MovieID returns the movie a mounted row shows.
func (r *Rows) MovieID(id RowID) (string, bool) {
	rw, ok := r.rows[id]
	if !ok {
		return "", false
	}
	return rw.movieID, true
}

// Len returns the number of mounted rows.
func (r *Rows) Len() int {
	return len(r.rows)
}

// Subscribe registers fn for toggle notifications.
func (r *Rows) Subscribe(fn func(Change)) (unsubscribe func()) {
	return r.changes.Subscribe(fn)
}
