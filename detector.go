package spatialgrid

import "math"

// epsilon is the threshold below which a direction component or a cross
// product is treated as zero.
const epsilon = 1e-9

// detectFunc tests two shapes placed at pa and pb. The table guarantees a and
// b hold the variants named by its row and column.
type detectFunc func(a Shape, pa Vec2, b Shape, pb Vec2) bool

// detectors is indexed by [a.Kind()][b.Kind()]. Six primitive tests cover the
// nine combinations; the remaining three swap their arguments.
var detectors = [shapeKindCount][shapeKindCount]detectFunc{
	ShapeCircle: {
		ShapeCircle: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return circleCircle(a.(Circle), pa, b.(Circle), pb)
		},
		ShapeRectangle: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return rectCircle(b.(Rectangle), pb, a.(Circle), pa)
		},
		ShapeLine: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return lineCircle(b.(Line), pb, a.(Circle), pa)
		},
	},
	ShapeRectangle: {
		ShapeCircle: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return rectCircle(a.(Rectangle), pa, b.(Circle), pb)
		},
		ShapeRectangle: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return rectRect(a.(Rectangle), pa, b.(Rectangle), pb)
		},
		ShapeLine: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return lineRect(b.(Line), pb, a.(Rectangle), pa)
		},
	},
	ShapeLine: {
		ShapeCircle: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return lineCircle(a.(Line), pa, b.(Circle), pb)
		},
		ShapeRectangle: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return lineRect(a.(Line), pa, b.(Rectangle), pb)
		},
		ShapeLine: func(a Shape, pa Vec2, b Shape, pb Vec2) bool {
			return lineLine(a.(Line), pa, b.(Line), pb)
		},
	},
}

// IsCollision reports whether shape a placed at pa overlaps shape b placed at
// pb. A nil shape never collides.
func IsCollision(a Shape, pa Vec2, b Shape, pb Vec2) bool {
	if a == nil || b == nil {
		return false
	}
	return detectors[a.Kind()][b.Kind()](a, pa, b, pb)
}

// circleCircle collides when the centres are strictly closer than the sum of
// the radii. Touching circles do not collide.
func circleCircle(a Circle, pa Vec2, b Circle, pb Vec2) bool {
	distSq := pa.Sub(pb).LengthSq()
	radSum := a.Radius + b.Radius
	return distSq < radSum*radSum
}

// rectCircle clamps the circle centre into the rectangle and compares the
// distance to the clamped point against the radius.
func rectCircle(a Rectangle, pa Vec2, b Circle, pb Vec2) bool {
	lt := pa.Add(a.LeftTop)
	rb := pa.Add(a.RightBottom)
	q := Vec2{
		X: math.Min(math.Max(pb.X, lt.X), rb.X),
		Y: math.Min(math.Max(pb.Y, lt.Y), rb.Y),
	}
	return q.Sub(pb).LengthSq() < b.Radius*b.Radius
}

// rectRect rejects when the rectangles are separated on either axis.
// Rectangles sharing an edge collide.
func rectRect(a Rectangle, pa Vec2, b Rectangle, pb Vec2) bool {
	aLT, aRB := pa.Add(a.LeftTop), pa.Add(a.RightBottom)
	bLT, bRB := pb.Add(b.LeftTop), pb.Add(b.RightBottom)
	if aRB.X < bLT.X || aLT.X > bRB.X {
		return false
	}
	if aRB.Y < bLT.Y || aLT.Y > bRB.Y {
		return false
	}
	return true
}

// lineCircle tests the perpendicular distance from the centre to the infinite
// line first, then falls back to endpoint distances when the centre projects
// outside the segment.
func lineCircle(a Line, pa Vec2, b Circle, pb Vec2) bool {
	start := pa.Add(a.Start)
	end := pa.Add(a.End)
	rSq := b.Radius * b.Radius
	ao := pb.Sub(start)

	seg := end.Sub(start)
	length := math.Sqrt(seg.LengthSq())
	if length < epsilon {
		return ao.LengthSq() < rSq
	}
	v := Vec2{seg.X / length, seg.Y / length}

	if math.Abs(v.Cross(ao)) > b.Radius {
		return false
	}
	if ao.Dot(v) < 0 {
		return ao.LengthSq() < rSq
	}
	bo := pb.Sub(end)
	if bo.Dot(v) > 0 {
		return bo.LengthSq() < rSq
	}
	return true
}

// lineRect is a slab test of the segment's ray against the rectangle. The ray
// parameter is measured in world units along the normalized direction, so the
// surviving interval [tmin, tmax] must meet [0, length].
func lineRect(a Line, pa Vec2, b Rectangle, pb Vec2) bool {
	bMin := pb.Add(b.LeftTop)
	bMax := pb.Add(b.RightBottom)
	p0 := pa.Add(a.Start)
	p1 := pa.Add(a.End)

	seg := p1.Sub(p0)
	length := math.Sqrt(seg.LengthSq())
	if length < epsilon {
		return p0.X >= bMin.X && p0.X <= bMax.X && p0.Y >= bMin.Y && p0.Y <= bMax.Y
	}

	origin := [2]float64{p0.X, p0.Y}
	dir := [2]float64{seg.X / length, seg.Y / length}
	lo := [2]float64{bMin.X, bMin.Y}
	hi := [2]float64{bMax.X, bMax.Y}

	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for i := 0; i < 2; i++ {
		if math.Abs(dir[i]) < epsilon {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return tmin <= length && tmax >= 0
}

// lineLine intersects two segments by cross-product parametrization.
// Parallel segments never collide, overlapping collinear ones included.
func lineLine(a Line, pa Vec2, b Line, pb Vec2) bool {
	p := pa.Add(a.Start)
	ba := pa.Add(a.End).Sub(p)
	c := pb.Add(b.Start)
	dc := pb.Add(b.End).Sub(c)

	denom := ba.Cross(dc)
	if math.Abs(denom) < epsilon {
		return false
	}
	ca := c.Sub(p)
	r := ca.Cross(dc) / denom
	if r < 0 || r > 1 {
		return false
	}
	s := ca.Cross(ba) / denom
	return s >= 0 && s <= 1
}
