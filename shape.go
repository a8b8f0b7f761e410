package spatialgrid

import "math"

// Shape is a collision primitive defined relative to its owner's position.
// The set of implementations is closed: Circle, Rectangle and Line.
type Shape interface {
	// Kind returns the variant tag used for narrow-phase dispatch.
	Kind() ShapeKind
	// Aabb returns the bounding box of the shape placed at (x, y).
	Aabb(x, y float64) Bounds

	sealed()
}

// Circle is a circle centred on the owner position.
type Circle struct {
	Radius float64
}

// Rectangle is an axis-aligned rectangle. LeftTop and RightBottom are offsets
// from the owner position.
type Rectangle struct {
	LeftTop     Vec2
	RightBottom Vec2
}

// Line is a line segment. Start and End are offsets from the owner position.
type Line struct {
	Start Vec2
	End   Vec2
}

// MakeCircle returns a circle of radius r.
func MakeCircle(r float64) Circle {
	return Circle{Radius: r}
}

// MakeRectangle returns a rectangle spanning lt to rb relative to the owner.
func MakeRectangle(lt, rb Vec2) Rectangle {
	return Rectangle{LeftTop: lt, RightBottom: rb}
}

// MakeLine returns a segment from s to e relative to the owner.
func MakeLine(s, e Vec2) Line {
	return Line{Start: s, End: e}
}

func (Circle) Kind() ShapeKind    { return ShapeCircle }
func (Rectangle) Kind() ShapeKind { return ShapeRectangle }
func (Line) Kind() ShapeKind      { return ShapeLine }

func (Circle) sealed()    {}
func (Rectangle) sealed() {}
func (Line) sealed()      {}

// Aabb returns [p-r, p+r] on both axes.
func (c Circle) Aabb(x, y float64) Bounds {
	return Bounds{
		Left:   x - c.Radius,
		Top:    y - c.Radius,
		Right:  x + c.Radius,
		Bottom: y + c.Radius,
	}
}

// Aabb returns the rectangle translated to (x, y).
func (r Rectangle) Aabb(x, y float64) Bounds {
	return Bounds{
		Left:   x + r.LeftTop.X,
		Top:    y + r.LeftTop.Y,
		Right:  x + r.RightBottom.X,
		Bottom: y + r.RightBottom.Y,
	}
}

// Aabb returns the min/max of both endpoints translated to (x, y).
func (l Line) Aabb(x, y float64) Bounds {
	return Bounds{
		Left:   x + math.Min(l.Start.X, l.End.X),
		Top:    y + math.Min(l.Start.Y, l.End.Y),
		Right:  x + math.Max(l.Start.X, l.End.X),
		Bottom: y + math.Max(l.Start.Y, l.End.Y),
	}
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return math.Sqrt(l.End.Sub(l.Start).LengthSq())
}
