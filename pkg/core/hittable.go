package core

// Material is the surface response attached to a hit. Intersection code only
// carries the reference through HitRecord; it never calls into it.
type Material interface{}

// HitRecord contains information about a ray-object intersection. Its contents
// are only meaningful when the Hit call that filled it returned true.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, facing against the incoming ray
	Material  Material // Material of the hit object
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface parameters
	FrontFace bool     // Whether ray hit the outward-facing side
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Mul(-1)
	}
}

// Kind identifies which variant of the closed Hittable set a value is
type Kind int

// The Hittable variants.
const (
	KindSphere Kind = iota
	KindQuad
	KindList
	KindTranslate
	KindRotateY
	KindVolume
	KindBVH
)

var kindNames = [...]string{
	KindSphere:    "sphere",
	KindQuad:      "quad",
	KindList:      "list",
	KindTranslate: "translate",
	KindRotateY:   "rotate_y",
	KindVolume:    "volume",
	KindBVH:       "bvh",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Hittable is implemented by everything a ray can be intersected with:
// primitives, transform wrappers and aggregates.
type Hittable interface {
	// Hit reports whether r hits the object for some t in rayT and, if so,
	// overwrites rec with the nearest such hit. s is the caller's random
	// stream; it must not be shared between goroutines.
	Hit(r Ray, rayT Interval, s Sampler, rec *HitRecord) bool

	// BoundingBox returns a box enclosing the object over the whole exposure
	// window.
	BoundingBox() AABB

	// Kind returns the variant tag.
	Kind() Kind
}

// Container is implemented by hittables that wrap or aggregate other hittables
type Container interface {
	Hittable
	Children() []Hittable
}
