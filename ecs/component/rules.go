package component

// Rules tunes the game layer around the physics: input strength, touch
// detection and scoring.
type Rules struct {
	MoveForce   float64
	DownFactor  float64
	TouchBuffer float64
	// PointsPerBody is awarded for every cleared body.
	PointsPerBody int
	// SettleDwellTicks is how long a body must stay settled before it takes
	// part in connectivity analysis. Zero uses the settled flag as is.
	SettleDwellTicks int
	Palette          []string
}

// DefaultRules returns the rules the game ships with.
func DefaultRules() Rules {
	return Rules{
		MoveForce:     0.5,
		DownFactor:    0.5,
		TouchBuffer:   10,
		PointsPerBody: 10,
		Palette:       []string{"red", "blue", "green", "yellow"},
	}
}

var RulesComponent = NewComponent[Rules]()
