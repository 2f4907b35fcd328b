package geometry

import (
	"github.com/pkg/errors"

	"github.com/df07/go-hittable/pkg/core"
)

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes    int     // Internal nodes, including the root
	Leaves   int     // Leaf references (a single-object node counts once)
	MaxDepth int     // Depth of the deepest leaf, root children at depth 1
	AvgDepth float64 // Mean leaf depth
	Objects  int     // Objects the tree was built over
}

// Stats walks the tree and returns structural statistics
func (b *BVH) Stats() BVHStats {
	stats := BVHStats{Objects: len(b.objects)}
	depthSum := 0
	b.collectStats(0, 0, &stats, &depthSum)

	if stats.Leaves > 0 {
		stats.AvgDepth = float64(depthSum) / float64(stats.Leaves)
	}
	return stats
}

func (b *BVH) collectStats(i, depth int, stats *BVHStats, depthSum *int) {
	stats.Nodes++
	node := b.nodes[i]

	children := []ref{node.left, node.right}
	if node.left == node.right {
		children = children[:1]
	}
	for _, child := range children {
		if child.isLeaf() {
			stats.Leaves++
			*depthSum += depth + 1
			if depth+1 > stats.MaxDepth {
				stats.MaxDepth = depth + 1
			}
			continue
		}
		b.collectStats(child.index(), depth+1, stats, depthSum)
	}
}

// Validate re-checks the structural invariants of every node: its box is the
// merge of its children's boxes, and a node over two objects orders them by
// ascending minimum on its split axis
func (b *BVH) Validate() error {
	for i, node := range b.nodes {
		want := core.Merge(b.boxOf(node.left), b.boxOf(node.right))
		if node.bbox != want {
			return errors.Errorf("bvh node %d: box %v is not the merge of its children %v", i, node.bbox, want)
		}

		if node.left.isLeaf() && node.right.isLeaf() && node.left != node.right {
			l := b.boxOf(node.left).Axis(node.axis).Min
			r := b.boxOf(node.right).Axis(node.axis).Min
			if r < l {
				return errors.Errorf("bvh node %d: leaves out of order on axis %d (%v > %v)", i, node.axis, l, r)
			}
		}
	}
	return nil
}
