package common

import "math"

// SmoothOutline subdivides a closed polygon so no segment is much longer than
// spacing, then relaxes it with passes of three-point averaging. The result
// is for drawing only.
func SmoothOutline(points []Vec2, spacing float64, passes int) []Vec2 {
	n := len(points)
	if n < 3 {
		return append([]Vec2(nil), points...)
	}

	dense := make([]Vec2, 0, n*2)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		dense = append(dense, a)
		if spacing <= 0 {
			continue
		}
		steps := int(math.Round(a.Dist(b) / spacing))
		for j := 1; j < steps; j++ {
			t := float64(j) / float64(steps)
			dense = append(dense, V(Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)))
		}
	}

	m := len(dense)
	next := make([]Vec2, m)
	for p := 0; p < passes; p++ {
		for i := range dense {
			prev := dense[(i-1+m)%m]
			after := dense[(i+1)%m]
			sum := prev.Add(dense[i]).Add(after)
			next[i] = V(sum.X/3, sum.Y/3)
		}
		dense, next = next, dense
	}
	return dense
}
