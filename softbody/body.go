package softbody

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/milk9111/blobdrop/common"
)

var (
	ErrTooFewNodes   = errors.New("softbody: body needs at least 3 nodes")
	ErrInvalidRadius = errors.New("softbody: radius must be positive")
	ErrInvalidEdge   = errors.New("softbody: invalid edge")
	ErrInvalidParams = errors.New("softbody: invalid params")
)

// Body is a colored deformable blob: a closed ring of nodes held together by
// springs and an area-preserving pressure force.
type Body struct {
	Center     common.Vec2
	Radius     float64
	Color      string
	Nodes      []Node
	Edges      []Edge
	TargetArea float64
	Settled    bool

	rng  *rand.Rand
	prev []common.Vec2
}

// New builds a body of p.Nodes nodes evenly spaced on a circle. The ring runs
// counter-clockwise in a y-up frame so the pressure normals point outward.
// A nil rng gets a time-seeded source.
func New(center common.Vec2, radius float64, color string, p Params, rng *rand.Rand) (*Body, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("softbody: radius %v: %w", radius, ErrInvalidRadius)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := p.Nodes
	nodes := make([]Node, n)
	for i := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(n)
		nodes[i].Pos = center.Add(common.ForAngle(angle).Scale(radius))
	}

	perimeter := nodes[0].Pos.Dist(nodes[1].Pos)
	edges := make([]Edge, 0, n*2)
	for i := 0; i < n; i++ {
		e, err := NewEdge(i, (i+1)%n, perimeter, p.Repulsion, p.Attraction, true)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	if s := p.CrossBraceStride; s > 1 && s < n {
		for i := 0; i < n; i++ {
			j := (i + s) % n
			if s*2 == n && j < i {
				// opposite pairs would otherwise be braced twice
				continue
			}
			e, err := NewEdge(i, j, nodes[i].Pos.Dist(nodes[j].Pos), p.Repulsion, p.Attraction, false)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
		}
	}

	b := &Body{
		Center: center,
		Radius: radius,
		Color:  color,
		Nodes:  nodes,
		Edges:  edges,
		rng:    rng,
	}
	b.TargetArea = b.Area()
	return b, nil
}

// Points returns a copy of the node positions in ring order.
func (b *Body) Points() []common.Vec2 {
	if b == nil {
		return nil
	}
	out := make([]common.Vec2, len(b.Nodes))
	for i := range b.Nodes {
		out[i] = b.Nodes[i].Pos
	}
	return out
}

// Area returns the current enclosed area of the node ring.
func (b *Body) Area() float64 {
	return PolygonArea(b.Points())
}

// Accelerate adds a uniform acceleration to every node.
func (b *Body) Accelerate(a common.Vec2) {
	if b == nil {
		return
	}
	for i := range b.Nodes {
		b.Nodes[i].Accelerate(a)
	}
}

// AverageSpeed returns the mean node velocity magnitude.
func (b *Body) AverageSpeed() float64 {
	if b == nil || len(b.Nodes) == 0 {
		return 0
	}
	total := 0.0
	for i := range b.Nodes {
		total += b.Nodes[i].Vel.Mag()
	}
	return total / float64(len(b.Nodes))
}

// Motion returns the mean distance the nodes travelled since the previous
// Step began, wall corrections included. It is +Inf before the first Step.
func (b *Body) Motion() float64 {
	if b == nil || len(b.prev) != len(b.Nodes) || len(b.Nodes) == 0 {
		return math.Inf(1)
	}
	total := 0.0
	for i := range b.Nodes {
		total += b.Nodes[i].Pos.Dist(b.prev[i])
	}
	return total / float64(len(b.Nodes))
}

// Step advances the body by one tick: springs, pressure, gravity and the
// velocity update, the settle check, sub-stepped integration and finally the
// center.
func (b *Body) Step(p Params) {
	if b == nil || len(b.Nodes) < 3 {
		return
	}

	// Vel still carries the gravity the floor cancels each tick, so a resting
	// body is judged by how far its nodes actually moved.
	motion := b.Motion()
	if len(b.prev) != len(b.Nodes) {
		b.prev = make([]common.Vec2, len(b.Nodes))
	}
	for i := range b.Nodes {
		b.prev[i] = b.Nodes[i].Pos
	}

	b.applySprings()
	b.applyPressure(p.Pressure)

	for i := range b.Nodes {
		n := &b.Nodes[i]
		if n.Fixed {
			continue
		}
		n.Accelerate(p.Gravity)
		n.Vel = n.Vel.Add(n.Acc)
	}

	b.Settled = motion < p.SettleThreshold

	substeps := p.Substeps
	if substeps < 1 {
		substeps = 1
	}
	for s := 0; s < substeps; s++ {
		for i := range b.Nodes {
			b.Nodes[i].Integrate(substeps, p.Friction)
		}
	}

	b.recenter()
}

func (b *Body) applySprings() {
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b.rng.Shuffle(len(b.Edges), func(i, j int) {
		b.Edges[i], b.Edges[j] = b.Edges[j], b.Edges[i]
	})
	for _, e := range b.Edges {
		e.Apply(b.Nodes)
	}
}

func (b *Body) applyPressure(coefficient float64) {
	force := (b.TargetArea - b.Area()) * coefficient
	if force == 0 {
		return
	}
	n := len(b.Nodes)
	for i := range b.Nodes {
		prev := b.Nodes[(i-1+n)%n].Pos
		next := b.Nodes[(i+1)%n].Pos
		dir := bisector(prev, b.Nodes[i].Pos, next)
		b.Nodes[i].Accelerate(dir.Scale(force))
	}
}

func (b *Body) recenter() {
	sum := common.Vec2{}
	for i := range b.Nodes {
		sum = sum.Add(b.Nodes[i].Pos)
	}
	b.Center = sum.Scale(1 / float64(len(b.Nodes)))
}
