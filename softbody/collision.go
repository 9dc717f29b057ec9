package softbody

import (
	"math"
	"math/rand"

	"github.com/milk9111/blobdrop/common"
)

// CollideWalls clamps free nodes inside the left, right and bottom edges of
// bounds, reflecting the clamped velocity component scaled by restitution.
// The top stays open so bodies can enter from above.
func (b *Body) CollideWalls(bounds common.Bounds, margin, restitution float64) {
	if b == nil {
		return
	}
	left := bounds.Left + margin
	right := bounds.Right - margin
	bottom := bounds.Bottom - margin
	for i := range b.Nodes {
		n := &b.Nodes[i]
		if n.Fixed {
			continue
		}
		if n.Pos.Y > bottom {
			n.Pos.Y = bottom
			n.Vel.Y *= -restitution
		}
		if n.Pos.X < left {
			n.Pos.X = left
			n.Vel.X *= -restitution
		}
		if n.Pos.X > right {
			n.Pos.X = right
			n.Vel.X *= -restitution
		}
	}
}

// Overlap returns how far the bounding circles of a and b interpenetrate,
// or zero when they do not.
func Overlap(a, b *Body) float64 {
	if a == nil || b == nil {
		return 0
	}
	o := a.Radius + b.Radius - a.Center.Dist(b.Center)
	if o <= 0 {
		return 0
	}
	return o
}

// Repel pushes two overlapping bodies apart along the line between their
// centers. The impulse is added to every node of a and subtracted from every
// node of b; coincident centers use a random direction from rng. It returns
// the impulse applied to a.
func Repel(a, b *Body, gain float64, rng *rand.Rand) (common.Vec2, bool) {
	overlap := Overlap(a, b)
	if overlap == 0 {
		return common.Vec2{}, false
	}

	dir := a.Center.Sub(b.Center).Normalize()
	if dir.IsZero() {
		var angle float64
		if rng != nil {
			angle = rng.Float64()
		} else {
			angle = rand.Float64()
		}
		dir = common.ForAngle(angle * 2 * math.Pi)
	}

	impulse := dir.Scale(overlap * gain)
	a.Accelerate(impulse)
	b.Accelerate(impulse.Neg())
	return impulse, true
}
