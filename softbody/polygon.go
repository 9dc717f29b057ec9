package softbody

import "github.com/milk9111/blobdrop/common"

// SignedArea returns the shoelace area of the closed polygon. It is positive
// for counter-clockwise rings in a y-up frame.
func SignedArea(points []common.Vec2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		p := points[i]
		q := points[(i+1)%n]
		total += p.X*q.Y - q.X*p.Y
	}
	return total / 2
}

// PolygonArea returns the unsigned area of the closed polygon.
func PolygonArea(points []common.Vec2) float64 {
	a := SignedArea(points)
	if a < 0 {
		return -a
	}
	return a
}

// bisector returns the normalized sum of the rotated unit normals of the two
// polygon edges meeting at cur.
func bisector(prev, cur, next common.Vec2) common.Vec2 {
	n1 := cur.Sub(next).Perp().Normalize()
	n2 := prev.Sub(cur).Perp().Normalize()
	return n1.Add(n2).Normalize()
}
