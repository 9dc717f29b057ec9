package softbody

import "fmt"

// velocityAveraging is the share of the velocity difference a perimeter edge
// removes per tick, split evenly between its two nodes.
const velocityAveraging = 0.4

// Edge is a spring between two nodes of the same body, addressed by index.
type Edge struct {
	A          int
	B          int
	RestLength float64
	Repulsion  float64
	Attraction float64
	// VelocityAveraging damps relative sliding of the two endpoints.
	VelocityAveraging bool
}

// NewEdge validates and returns a spring between node indices a and b.
func NewEdge(a, b int, restLength, repulsion, attraction float64, velocityAveraging bool) (Edge, error) {
	if a == b || a < 0 || b < 0 {
		return Edge{}, fmt.Errorf("softbody: edge %d-%d: %w", a, b, ErrInvalidEdge)
	}
	if !(restLength > 0) {
		return Edge{}, fmt.Errorf("softbody: edge %d-%d rest length %v: %w", a, b, restLength, ErrInvalidEdge)
	}
	return Edge{
		A:                 a,
		B:                 b,
		RestLength:        restLength,
		Repulsion:         repulsion,
		Attraction:        attraction,
		VelocityAveraging: velocityAveraging,
	}, nil
}

// Force returns the signed spring force for a separation of dist. Negative
// pushes the endpoints apart, positive pulls them together.
func (e Edge) Force(dist float64) float64 {
	if dist < e.RestLength {
		return (dist - e.RestLength) * e.Repulsion
	}
	return (dist - e.RestLength) * e.Attraction
}

// Apply accumulates the spring force into both endpoints of nodes.
func (e Edge) Apply(nodes []Node) {
	if e.A < 0 || e.B < 0 || e.A >= len(nodes) || e.B >= len(nodes) {
		return
	}
	a := &nodes[e.A]
	b := &nodes[e.B]

	sep := b.Pos.Sub(a.Pos)
	dist := sep.Mag()
	if dist == 0 {
		return
	}

	f := sep.Scale(e.Force(dist) / dist)
	a.Accelerate(f)
	b.Accelerate(f.Neg())

	if e.VelocityAveraging {
		d := b.Vel.Sub(a.Vel).Scale(velocityAveraging / 2)
		a.Accelerate(d)
		b.Accelerate(d.Neg())
	}
}

// Length returns the current distance between the edge's endpoints.
func (e Edge) Length(nodes []Node) float64 {
	if e.A >= len(nodes) || e.B >= len(nodes) {
		return 0
	}
	return nodes[e.A].Pos.Dist(nodes[e.B].Pos)
}
