package common

// Bounds is the axis-aligned play field. Y grows downward.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

func (b Bounds) CenterX() float64 {
	return (b.Left + b.Right) / 2
}

// Valid reports whether the bounds enclose a non-empty area.
func (b Bounds) Valid() bool {
	return b.Right > b.Left && b.Bottom > b.Top
}
