package softbody

import (
	"math"

	"github.com/milk9111/blobdrop/common"
)

// Node is a point mass in a body's spring network.
type Node struct {
	Pos   common.Vec2
	Vel   common.Vec2
	Acc   common.Vec2
	Fixed bool
}

// Integrate advances the node by one of substeps sub-steps. Damping is
// fractional so that substeps calls together scale velocity by friction.
func (n *Node) Integrate(substeps int, friction float64) {
	if n == nil || n.Fixed {
		return
	}
	if substeps < 1 {
		substeps = 1
	}
	inv := 1 / float64(substeps)
	n.Vel = n.Vel.Scale(math.Pow(friction, inv))
	n.Pos = n.Pos.Add(n.Vel.Scale(inv))
	n.Acc = common.Vec2{}
}

// Accelerate adds a to the node's accumulated acceleration.
func (n *Node) Accelerate(a common.Vec2) {
	n.Acc = n.Acc.Add(a)
}
