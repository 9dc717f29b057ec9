package component

// Score accumulates points awarded by connectivity clears.
type Score struct {
	Points  int
	Cleared int
}

var ScoreComponent = NewComponent[Score]()
