package connectivity

import (
	"sort"
	"testing"

	"github.com/milk9111/blobdrop/common"
)

var arena = common.Bounds{Left: 0, Right: 400, Top: 0, Bottom: 600}

const buffer = 10

func body(id int, x, y, r float64, color string) Body[int] {
	return Body[int]{ID: id, Center: common.V(x, y), Radius: r, Color: color}
}

func sorted(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name   string
		bodies []Body[int]
		want   []int
	}{
		{
			name: "bridge_clears_chain_and_leaves_isolated",
			bodies: []Body[int]{
				body(1, 100, 500, 100, "red"), // A touches left
				body(2, 300, 500, 100, "red"), // B touches A and right
				body(3, 200, 100, 30, "red"),  // C isolated
			},
			want: []int{1, 2},
		},
		{
			name: "no_left_wall_body",
			bodies: []Body[int]{
				body(1, 200, 500, 100, "red"),
				body(2, 320, 500, 80, "red"),
			},
			want: nil,
		},
		{
			name: "no_right_wall_body",
			bodies: []Body[int]{
				body(1, 80, 500, 80, "red"),
				body(2, 200, 500, 80, "red"),
			},
			want: nil,
		},
		{
			name: "color_break",
			bodies: []Body[int]{
				body(1, 100, 500, 100, "red"),
				body(2, 300, 500, 100, "blue"),
			},
			want: nil,
		},
		{
			name: "gap_breaks_chain",
			bodies: []Body[int]{
				body(1, 40, 500, 40, "red"),
				body(2, 360, 500, 40, "red"),
			},
			want: nil,
		},
		{
			name: "long_chain",
			bodies: []Body[int]{
				body(1, 40, 500, 40, "green"),
				body(2, 120, 500, 40, "green"),
				body(3, 200, 500, 40, "green"),
				body(4, 280, 500, 40, "green"),
				body(5, 360, 500, 40, "green"),
				body(6, 200, 420, 40, "green"), // hangs off the chain
				body(7, 200, 300, 20, "blue"),
			},
			want: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name: "spanning_single_body",
			bodies: []Body[int]{
				body(1, 200, 400, 200, "yellow"),
			},
			want: []int{1},
		},
		{
			name: "only_bridging_component_cleared",
			bodies: []Body[int]{
				body(1, 100, 500, 100, "red"),
				body(2, 300, 500, 100, "red"),
				body(3, 40, 200, 40, "blue"), // touches left, no bridge
			},
			want: []int{1, 2},
		},
		{
			name:   "empty",
			bodies: nil,
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sorted(Analyze(tc.bodies, arena, buffer))
			if !equal(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBuildGraph(t *testing.T) {
	bodies := []Body[int]{
		body(1, 0, 0, 10, "red"),
		body(2, 25, 0, 10, "red"),  // within buffer of 1
		body(3, 60, 0, 10, "red"),  // too far from 2
		body(4, 20, 0, 10, "blue"), // overlaps 1 and 2 but wrong color
	}
	g := BuildGraph(bodies, buffer)

	if len(g) != 4 {
		t.Fatalf("expected every body in graph, got %d entries", len(g))
	}
	if !equal(g[1], []int{2}) || !equal(g[2], []int{1}) {
		t.Fatalf("expected 1<->2 edge, got %v / %v", g[1], g[2])
	}
	if len(g[3]) != 0 || len(g[4]) != 0 {
		t.Fatalf("expected isolated 3 and 4, got %v / %v", g[3], g[4])
	}
}

func TestBridgingVisitsOnce(t *testing.T) {
	// a cycle reachable from two seeds must not be reported twice
	g := Graph[int]{
		1: {2, 3},
		2: {1, 3},
		3: {1, 2, 4},
		4: {3},
	}
	got := Bridging(g, []int{1, 2}, map[int]bool{4: true})
	if !equal(sorted(got), []int{1, 2, 3, 4}) {
		t.Fatalf("expected each body once, got %v", got)
	}
	if got[0] != 1 {
		t.Fatalf("expected discovery order to start at the first seed, got %v", got)
	}
}

func TestWallSets(t *testing.T) {
	bodies := []Body[int]{
		body(1, 45, 0, 40, "red"),  // 5 from left
		body(2, 60, 0, 40, "red"),  // 20 from left
		body(3, 355, 0, 40, "red"), // 5 from right
	}
	left, right := WallSets(bodies, arena, buffer)
	if !equal(left, []int{1}) {
		t.Fatalf("expected left set [1], got %v", left)
	}
	if len(right) != 1 || !right[3] {
		t.Fatalf("expected right set {3}, got %v", right)
	}
}
