package marquee

// HomeAction represents how the user left the movie list.
type HomeAction int

const (
	HomeActionSelected HomeAction = iota // User opened a movie (A button)
	HomeActionQuit                       // User quit (B button)
)

// DetailsAction represents how the user left the details screen.
type DetailsAction int

const (
	DetailsActionBack DetailsAction = iota // User went back (B button or back arrow)
)

// HomeResume is the list position restored when the user comes back to it.
// Row expansion is deliberately not part of it.
type HomeResume struct {
	Focused int
	ScrollY int32
}

// HomeResult is the return value of HomeScreen.
type HomeResult struct {
	Action  HomeAction
	MovieID string // set for HomeActionSelected
	Resume  HomeResume
}

// DetailsResult is the return value of DetailsScreen.
type DetailsResult struct {
	Action DetailsAction
}
