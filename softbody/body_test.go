package softbody

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/blobdrop/common"
)

func newTestBody(t *testing.T, center common.Vec2, radius float64, p Params) *Body {
	t.Helper()
	b, err := New(center, radius, "blue", p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNewBody(t *testing.T) {
	p := DefaultParams()
	b := newTestBody(t, common.V(100, 50), 30, p)

	if len(b.Nodes) != p.Nodes || len(b.Edges) != p.Nodes {
		t.Fatalf("expected %d nodes and perimeter edges, got %d / %d", p.Nodes, len(b.Nodes), len(b.Edges))
	}
	circle := math.Pi * 30 * 30
	if b.TargetArea <= 0.98*circle || b.TargetArea >= circle {
		t.Fatalf("target area %v should be just under the circle area %v", b.TargetArea, circle)
	}
	if SignedArea(b.Points()) <= 0 {
		t.Fatalf("expected counter-clockwise ring")
	}
	for i, e := range b.Edges {
		if !e.VelocityAveraging {
			t.Fatalf("perimeter edge %d should average velocities", i)
		}
		if math.Abs(e.Length(b.Nodes)-e.RestLength) > 1e-9 {
			t.Fatalf("perimeter edge %d not at rest", i)
		}
	}
}

func TestNewBodyCrossBraces(t *testing.T) {
	tests := []struct {
		name   string
		nodes  int
		stride int
		want   int
	}{
		{"disabled", 12, 0, 12},
		{"stride_three", 12, 3, 24},
		{"opposite_pairs_once", 12, 6, 18},
		{"stride_out_of_range", 12, 12, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			p.Nodes = tc.nodes
			p.CrossBraceStride = tc.stride
			b := newTestBody(t, common.V(0, 0), 20, p)
			if len(b.Edges) != tc.want {
				t.Fatalf("expected %d edges, got %d", tc.want, len(b.Edges))
			}
			braces := 0
			for _, e := range b.Edges {
				if !e.VelocityAveraging {
					braces++
				}
			}
			if braces != tc.want-tc.nodes {
				t.Fatalf("expected %d cross braces without velocity averaging, got %d", tc.want-tc.nodes, braces)
			}
		})
	}
}

func TestNewBodyRejectsInvalid(t *testing.T) {
	few := DefaultParams()
	few.Nodes = 2
	if _, err := New(common.V(0, 0), 10, "red", few, nil); !errors.Is(err, ErrTooFewNodes) {
		t.Fatalf("expected ErrTooFewNodes, got %v", err)
	}
	if _, err := New(common.V(0, 0), 0, "red", DefaultParams(), nil); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("expected ErrInvalidRadius, got %v", err)
	}
	bad := DefaultParams()
	bad.Substeps = 0
	if _, err := New(common.V(0, 0), 10, "red", bad, nil); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestPressureResistsCompression(t *testing.T) {
	b := newTestBody(t, common.V(0, 0), 30, DefaultParams())
	for i := range b.Nodes {
		b.Nodes[i].Pos = b.Nodes[i].Pos.Scale(0.8)
	}
	b.applyPressure(0.001)
	for i := range b.Nodes {
		radial := b.Nodes[i].Pos.Normalize()
		if b.Nodes[i].Acc.Dot(radial) <= 0 {
			t.Fatalf("node %d: expected outward pressure, got %+v", i, b.Nodes[i].Acc)
		}
	}

	over := newTestBody(t, common.V(0, 0), 30, DefaultParams())
	for i := range over.Nodes {
		over.Nodes[i].Pos = over.Nodes[i].Pos.Scale(1.2)
	}
	over.applyPressure(0.001)
	for i := range over.Nodes {
		if over.Nodes[i].Acc.Dot(over.Nodes[i].Pos.Normalize()) >= 0 {
			t.Fatalf("node %d: expected inward pressure, got %+v", i, over.Nodes[i].Acc)
		}
	}
}

func TestStepFreeFall(t *testing.T) {
	p := DefaultParams()
	b := newTestBody(t, common.V(200, 100), 30, p)
	area := b.Area()

	for i := 0; i < 20; i++ {
		b.Step(p)
	}

	if b.Center.Y <= 100 {
		t.Fatalf("expected body to fall, center %+v", b.Center)
	}
	if math.Abs(b.Center.X-200) > 1e-6 {
		t.Fatalf("expected no horizontal drift, center %+v", b.Center)
	}
	if math.Abs(b.Area()-area)/area > 0.01 {
		t.Fatalf("free fall should preserve area: %v -> %v", area, b.Area())
	}
	if b.Settled {
		t.Fatalf("falling body must not be settled")
	}
}

func TestStepSettlesAtRest(t *testing.T) {
	p := DefaultParams()
	p.Gravity = common.Vec2{}
	b := newTestBody(t, common.V(0, 0), 30, p)
	b.Step(p)
	if b.Settled {
		t.Fatalf("a body with no history must not be settled")
	}
	b.Step(p)
	if !b.Settled {
		t.Fatalf("body at rest should be settled, motion %v", b.Motion())
	}

	// the push shows up in the displacement measured on the following tick
	b.Accelerate(common.V(5, 0))
	b.Step(p)
	b.Step(p)
	if b.Settled {
		t.Fatalf("disturbed body should not be settled, motion %v speed %v", b.Motion(), b.AverageSpeed())
	}
}

func TestStepSkipsFixedNodes(t *testing.T) {
	p := DefaultParams()
	b := newTestBody(t, common.V(0, 0), 30, p)
	b.Nodes[0].Fixed = true
	pinned := b.Nodes[0].Pos
	for i := 0; i < 30; i++ {
		b.Step(p)
	}
	if b.Nodes[0].Pos != pinned || !b.Nodes[0].Vel.IsZero() {
		t.Fatalf("fixed node moved: %+v", b.Nodes[0])
	}
	if b.Nodes[len(b.Nodes)/2].Pos.Y <= 0 {
		t.Fatalf("free nodes should still sag under gravity")
	}
}

func TestCollideWalls(t *testing.T) {
	bounds := common.Bounds{Left: 0, Right: 100, Top: 0, Bottom: 100}
	b := newTestBody(t, common.V(50, 50), 10, DefaultParams())
	b.Nodes[0].Pos = common.V(120, 50)
	b.Nodes[0].Vel = common.V(10, 0)
	b.Nodes[1].Pos = common.V(50, 130)
	b.Nodes[1].Vel = common.V(0, 5)
	b.Nodes[2].Pos = common.V(-5, -50)
	b.Nodes[2].Vel = common.V(-2, -3)

	b.CollideWalls(bounds, 4, 0.3)

	checks := []struct {
		name string
		got  Node
		pos  common.Vec2
		vel  common.Vec2
	}{
		{"right", b.Nodes[0], common.V(96, 50), common.V(-3, 0)},
		{"bottom", b.Nodes[1], common.V(50, 96), common.V(0, -1.5)},
		{"left_top_open", b.Nodes[2], common.V(4, -50), common.V(0.6, -3)},
	}
	for _, c := range checks {
		if c.got.Pos.Dist(c.pos) > 1e-9 || c.got.Vel.Dist(c.vel) > 1e-9 {
			t.Fatalf("%s: got pos %+v vel %+v, want %+v %+v", c.name, c.got.Pos, c.got.Vel, c.pos, c.vel)
		}
	}
}

func TestRepelIsEqualAndOpposite(t *testing.T) {
	p := DefaultParams()
	a := newTestBody(t, common.V(0, 0), 30, p)
	b := newTestBody(t, common.V(40, 0), 30, p)

	impulse, ok := Repel(a, b, 0.1, nil)
	if !ok {
		t.Fatalf("expected overlapping bodies to repel")
	}
	if math.Abs(impulse.X-(-2)) > 1e-9 || math.Abs(impulse.Y) > 1e-9 {
		t.Fatalf("expected impulse (-2, 0), got %+v", impulse)
	}

	total := common.Vec2{}
	for i := range a.Nodes {
		if a.Nodes[i].Acc != impulse {
			t.Fatalf("node %d of a: expected %+v, got %+v", i, impulse, a.Nodes[i].Acc)
		}
		total = total.Add(a.Nodes[i].Acc)
	}
	for i := range b.Nodes {
		if b.Nodes[i].Acc != impulse.Neg() {
			t.Fatalf("node %d of b: expected %+v, got %+v", i, impulse.Neg(), b.Nodes[i].Acc)
		}
		total = total.Add(b.Nodes[i].Acc)
	}
	if total.Mag() > 1e-9 {
		t.Fatalf("expected zero net momentum contribution, got %+v", total)
	}
}

func TestRepel(t *testing.T) {
	p := DefaultParams()
	t.Run("apart", func(t *testing.T) {
		a := newTestBody(t, common.V(0, 0), 10, p)
		b := newTestBody(t, common.V(25, 0), 10, p)
		if _, ok := Repel(a, b, 0.1, nil); ok {
			t.Fatalf("separated bodies must not repel")
		}
		if !a.Nodes[0].Acc.IsZero() {
			t.Fatalf("expected untouched accelerations")
		}
	})
	t.Run("coincident_centers", func(t *testing.T) {
		a := newTestBody(t, common.V(5, 5), 10, p)
		b := newTestBody(t, common.V(5, 5), 10, p)
		impulse, ok := Repel(a, b, 0.1, rand.New(rand.NewSource(3)))
		if !ok {
			t.Fatalf("coincident bodies must repel")
		}
		if math.Abs(impulse.Mag()-2) > 1e-9 {
			t.Fatalf("expected impulse magnitude 2, got %v", impulse.Mag())
		}
		want := common.ForAngle(rand.New(rand.NewSource(3)).Float64() * 2 * math.Pi).Scale(2)
		if impulse.Dist(want) > 1e-9 {
			t.Fatalf("direction should come from the given rng: expected %+v, got %+v", want, impulse)
		}
	})
	t.Run("coincident_centers_without_rng", func(t *testing.T) {
		a := newTestBody(t, common.V(5, 5), 10, p)
		b := newTestBody(t, common.V(5, 5), 10, p)
		impulse, ok := Repel(a, b, 0.1, nil)
		if !ok || math.Abs(impulse.Mag()-2) > 1e-9 {
			t.Fatalf("expected a unit-direction impulse of 2, got %+v %v", impulse, ok)
		}
	})
}
