package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec2 is a 2D vector with value semantics. Arithmetic delegates to cp.Vector.
type Vec2 cp.Vector

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// ForAngle returns the unit vector pointing at angle radians.
func ForAngle(angle float64) Vec2 {
	return Vec2(cp.ForAngle(angle))
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(cp.Vector(v).Add(cp.Vector(o)))
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(cp.Vector(v).Sub(cp.Vector(o)))
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2(cp.Vector(v).Mult(s))
}

func (v Vec2) Neg() Vec2 {
	return Vec2(cp.Vector(v).Neg())
}

func (v Vec2) Dot(o Vec2) float64 {
	return cp.Vector(v).Dot(cp.Vector(o))
}

func (v Vec2) Mag() float64 {
	return cp.Vector(v).Length()
}

func (v Vec2) MagSq() float64 {
	return cp.Vector(v).LengthSq()
}

func (v Vec2) Dist(o Vec2) float64 {
	return cp.Vector(v).Distance(cp.Vector(o))
}

func (v Vec2) DistSq(o Vec2) float64 {
	return cp.Vector(v).DistanceSq(cp.Vector(o))
}

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Mag()
	if l == 0 || math.IsNaN(l) {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	return Vec2(cp.Vector(v).Rotate(cp.ForAngle(angle)))
}

// Perp returns v rotated by exactly 90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2(cp.Vector(v).Perp())
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
