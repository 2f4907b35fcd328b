package geometry

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"

	"github.com/df07/go-hittable/pkg/core"
)

// ErrEmptyScene is returned when a BVH is requested over no objects
var ErrEmptyScene = errors.New("bvh: no geometry to build over")

// ref points at a BVH child: an internal node index when >= 0, otherwise the
// leaf object at index ^ref
type ref int

func nodeRef(i int) ref { return ref(i) }

func leafRef(i int) ref { return ref(^i) }

func (r ref) isLeaf() bool { return r < 0 }

func (r ref) index() int { return int(r) }

func (r ref) leafIndex() int { return int(^r) }

// bvhNode is one internal node of the tree. Children are references into the
// owning BVH's node and object arenas.
type bvhNode struct {
	bbox        core.AABB
	left, right ref
	axis        int
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a flat arena built bottom-up; node 0 is the root. A node
// covering a single object points both children at it.
type BVH struct {
	nodes   []bvhNode
	objects []core.Hittable
}

// BVHOption configures BVH construction
type BVHOption func(*bvhOptions)

type bvhOptions struct {
	logger core.Logger
}

// WithLogger logs build statistics at debug level
func WithLogger(logger core.Logger) BVHOption {
	return func(o *bvhOptions) {
		o.logger = logger
	}
}

// NewBVH constructs a BVH over objects, choosing split axes from rng. The same
// rng seed over the same objects always yields the same tree.
func NewBVH(objects []core.Hittable, rng *rand.Rand, opts ...BVHOption) (*BVH, error) {
	options := bvhOptions{logger: core.NopLogger{}}
	for _, opt := range opts {
		opt(&options)
	}

	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}
	if rng == nil {
		return nil, errors.New("bvh: nil random source")
	}

	// Copy so sorting never reorders the caller's slice
	bvh := &BVH{
		objects: append([]core.Hittable(nil), objects...),
		nodes:   make([]bvhNode, 1, len(objects)),
	}
	root := bvh.build(rng, 0, len(objects))
	bvh.nodes[0] = root

	stats := bvh.Stats()
	options.logger.Debugf("built bvh over %d objects: %d nodes, max depth %d, avg leaf depth %.2f",
		stats.Objects, stats.Nodes, stats.MaxDepth, stats.AvgDepth)

	return bvh, nil
}

// NewBVHFromList constructs a BVH over the objects of a list
func NewBVHFromList(list *List, rng *rand.Rand, opts ...BVHOption) (*BVH, error) {
	bvh, err := NewBVH(list.Children(), rng, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "building bvh from list")
	}
	return bvh, nil
}

// build returns the node covering objects[start:end]. Internal children are
// appended to the arena before their parent's box is computed.
func (b *BVH) build(rng *rand.Rand, start, end int) bvhNode {
	axis := rng.IntN(3)
	less := func(x, y core.Hittable) bool {
		return x.BoundingBox().Axis(axis).Min < y.BoundingBox().Axis(axis).Min
	}

	node := bvhNode{axis: axis}
	switch span := end - start; span {
	case 1:
		node.left = leafRef(start)
		node.right = node.left
	case 2:
		if less(b.objects[start+1], b.objects[start]) {
			b.objects[start], b.objects[start+1] = b.objects[start+1], b.objects[start]
		}
		node.left = leafRef(start)
		node.right = leafRef(start + 1)
	default:
		objs := b.objects[start:end]
		sort.SliceStable(objs, func(i, j int) bool {
			return less(objs[i], objs[j])
		})

		mid := start + (end-start)/2
		node.left = b.push(b.build(rng, start, mid))
		node.right = b.push(b.build(rng, mid, end))
	}

	node.bbox = core.Merge(b.boxOf(node.left), b.boxOf(node.right))
	return node
}

func (b *BVH) push(n bvhNode) ref {
	b.nodes = append(b.nodes, n)
	return nodeRef(len(b.nodes) - 1)
}

func (b *BVH) boxOf(r ref) core.AABB {
	if r.isLeaf() {
		return b.objects[r.leafIndex()].BoundingBox()
	}
	return b.nodes[r.index()].bbox
}

// Hit returns the nearest hit among all objects in the tree
func (b *BVH) Hit(ray core.Ray, rayT core.Interval, s core.Sampler, rec *core.HitRecord) bool {
	return b.hitNode(0, ray, rayT, s, rec)
}

// hitNode prunes on the node box, then searches left before right, narrowing
// the right search to hits closer than the left one
func (b *BVH) hitNode(i int, ray core.Ray, rayT core.Interval, s core.Sampler, rec *core.HitRecord) bool {
	node := &b.nodes[i]
	if !node.bbox.Hit(ray, rayT) {
		return false
	}

	hitLeft := b.hitRef(node.left, ray, rayT, s, rec)
	if hitLeft {
		rayT.Max = rec.T
	}
	hitRight := b.hitRef(node.right, ray, rayT, s, rec)

	return hitLeft || hitRight
}

func (b *BVH) hitRef(r ref, ray core.Ray, rayT core.Interval, s core.Sampler, rec *core.HitRecord) bool {
	if r.isLeaf() {
		return b.objects[r.leafIndex()].Hit(ray, rayT, s, rec)
	}
	return b.hitNode(r.index(), ray, rayT, s, rec)
}

// BoundingBox returns the root box
func (b *BVH) BoundingBox() core.AABB {
	return b.nodes[0].bbox
}

// Kind returns core.KindBVH
func (b *BVH) Kind() core.Kind {
	return core.KindBVH
}

// Children returns the objects the tree was built over, in tree order
func (b *BVH) Children() []core.Hittable {
	return b.objects
}
