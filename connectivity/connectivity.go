// Package connectivity finds chains of same-colored, touching bodies that
// bridge the left and right walls of the arena.
package connectivity

import (
	"github.com/milk9111/blobdrop/common"
	"gopkg.in/eapache/queue.v1"
)

// Body is the view of a settled body the analyzer needs.
type Body[K comparable] struct {
	ID     K
	Center common.Vec2
	Radius float64
	Color  string
}

// Graph maps a body to its same-colored touching neighbours.
type Graph[K comparable] map[K][]K

// Touching reports whether a and b share a color and their bounding circles
// are within buffer of each other.
func Touching[K comparable](a, b Body[K], buffer float64) bool {
	if a.Color != b.Color {
		return false
	}
	reach := a.Radius + b.Radius + buffer
	return a.Center.DistSq(b.Center) < reach*reach
}

// BuildGraph returns the undirected adjacency of bodies. Every body has an
// entry, isolated ones with no neighbours. Neighbour order follows input order.
func BuildGraph[K comparable](bodies []Body[K], buffer float64) Graph[K] {
	g := make(Graph[K], len(bodies))
	for _, b := range bodies {
		g[b.ID] = nil
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if !Touching(bodies[i], bodies[j], buffer) {
				continue
			}
			a, b := bodies[i].ID, bodies[j].ID
			g[a] = append(g[a], b)
			g[b] = append(g[b], a)
		}
	}
	return g
}

// WallSets returns the bodies within buffer of the left and right walls.
func WallSets[K comparable](bodies []Body[K], bounds common.Bounds, buffer float64) (left []K, right map[K]bool) {
	right = make(map[K]bool)
	for _, b := range bodies {
		if b.Center.X-b.Radius < bounds.Left+buffer {
			left = append(left, b.ID)
		}
		if b.Center.X+b.Radius > bounds.Right-buffer {
			right[b.ID] = true
		}
	}
	return left, right
}

// Bridging runs a breadth-first search from every seed with a shared visited
// set and returns the members of each component that reaches a target, in
// discovery order.
func Bridging[K comparable](g Graph[K], seeds []K, targets map[K]bool) []K {
	if len(seeds) == 0 || len(targets) == 0 {
		return nil
	}

	var matched []K
	visited := make(map[K]bool, len(g))
	q := queue.New()

	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		q.Add(seed)

		component := []K{seed}
		bridges := false
		for q.Length() > 0 {
			cur := q.Remove().(K)
			if targets[cur] {
				bridges = true
			}
			for _, next := range g[cur] {
				if visited[next] {
					continue
				}
				visited[next] = true
				component = append(component, next)
				q.Add(next)
			}
		}
		if bridges {
			matched = append(matched, component...)
		}
	}
	return matched
}

// Analyze returns the bodies whose same-colored component touches both the
// left and right walls. bodies should contain settled bodies only.
func Analyze[K comparable](bodies []Body[K], bounds common.Bounds, buffer float64) []K {
	left, right := WallSets(bodies, bounds, buffer)
	if len(left) == 0 || len(right) == 0 {
		return nil
	}
	return Bridging(BuildGraph(bodies, buffer), left, right)
}
