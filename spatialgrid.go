package spatialgrid

// Vec2 is a 2D vector used for positions, offsets, and velocities throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// LengthSq returns the squared length of v.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Bounds is an axis-aligned bounding box. The coordinate system has its origin
// at the top-left, with Y increasing downward, so Top <= Bottom.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// Contains reports whether the point (x, y) lies inside the box.
// Points on the edge are considered inside.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right &&
		y >= b.Top && y <= b.Bottom
}

// Intersects reports whether b and other overlap.
// Boxes sharing only an edge are considered intersecting.
func (b Bounds) Intersects(other Bounds) bool {
	return b.Left <= other.Right &&
		b.Right >= other.Left &&
		b.Top <= other.Bottom &&
		b.Bottom >= other.Top
}

// ShapeKind identifies the variant held by a Shape. The values index the
// narrow-phase dispatch table.
type ShapeKind uint8

const (
	ShapeCircle    ShapeKind = iota // circle around the owner position
	ShapeRectangle                  // axis-aligned rectangle with corner offsets
	ShapeLine                       // line segment with endpoint offsets

	shapeKindCount
)

// String returns the lower-case name used in config and script files.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeLine:
		return "line"
	default:
		return "unknown"
	}
}

// GroupID classifies an entity's role (player, enemy, projectile, wall...)
// for collision handler lookup.
type GroupID uint32

// Handle is a stable reference to an entity slot. Index selects the slot and
// Generation guards against the slot having been recycled since the handle
// was issued.
type Handle struct {
	Index      uint32
	Generation uint32
}

// Nil reports whether h is the zero handle. AddEntity never returns it.
func (h Handle) Nil() bool {
	return h.Generation == 0
}
