package router

// StackEntry is a single entry in the navigation stack: the route that was
// shown and any resume state the screen left behind (scroll position and the
// like) for when it is shown again.
type StackEntry struct {
	Route  Route
	Resume any
}

// Stack is the navigation history. It always holds at least its root entry;
// the last entry is the current screen.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a stack holding only root.
func NewStack(root Route) *Stack {
	return &Stack{
		entries: []StackEntry{{Route: root}},
	}
}

// Push adds a new entry on top of the stack.
func (s *Stack) Push(route Route) {
	s.entries = append(s.entries, StackEntry{Route: route})
}

// Pop removes the top entry and returns it.
// At the root it does nothing and returns false.
func (s *Stack) Pop() (StackEntry, bool) {
	if len(s.entries) <= 1 {
		return StackEntry{}, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() StackEntry {
	return s.entries[len(s.entries)-1]
}

// SetResume replaces the resume state of the top entry.
func (s *Stack) SetResume(resume any) {
	s.entries[len(s.entries)-1].Resume = resume
}

// Len returns the number of entries, which is never less than one.
func (s *Stack) Len() int {
	return len(s.entries)
}

// IsRoot reports whether only the root entry is left.
func (s *Stack) IsRoot() bool {
	return len(s.entries) == 1
}

// Routes returns the routes from root to top.
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}

// Truncate drops everything above the root entry.
func (s *Stack) Truncate() {
	clear(s.entries[1:])
	s.entries = s.entries[:1]
}
