package spatialgrid

// Entity is a movable, shaped, group-tagged object tracked by a World. A single
// flat struct is used for every role; the group id decides which collision
// handlers apply.
//
// Entities live in the World's arena and are never moved in memory, so a
// *Entity obtained from World.Entity or a CollisionContext stays usable until
// the entity is reclaimed by RemoveEntity. Hold a Handle to refer to an entity
// across frames.
type Entity struct {
	// Position. The world owns no motion logic beyond VX/VY and tweens;
	// callers and OnUpdate mutate these freely. Z is draw depth only.
	X, Y, Z float64

	// Manual velocity in units per second, applied by Update.
	VX, VY float64

	Rotation float64

	// Metadata
	UserData any

	// OnUpdate is called at the end of Update, after velocity and tweens.
	OnUpdate func(e *Entity, dt float64)

	handle          Handle
	group           GroupID
	shape           Shape
	removeRequested bool
	alive           bool
	tweens          []*TweenGroup
}

// reset reconstructs e in place for a fresh or recycled slot.
func (e *Entity) reset(h Handle, gid GroupID, pos Vec2, shape Shape) {
	tweens := e.tweens[:0]
	for i := range e.tweens {
		e.tweens[i] = nil
	}
	*e = Entity{
		X:      pos.X,
		Y:      pos.Y,
		handle: h,
		group:  gid,
		shape:  shape,
		alive:  true,
		tweens: tweens,
	}
}

// Handle returns the stable reference for this entity.
func (e *Entity) Handle() Handle { return e.handle }

// GroupID returns the collision group.
func (e *Entity) GroupID() GroupID { return e.group }

// SetGroupID changes the collision group. Takes effect at the next Update.
func (e *Entity) SetGroupID(gid GroupID) { e.group = gid }

// Shape returns the collision shape.
func (e *Entity) Shape() Shape { return e.shape }

// SetShape replaces the collision shape. Takes effect at the next Update.
func (e *Entity) SetShape(s Shape) { e.shape = s }

// Position returns (X, Y).
func (e *Entity) Position() Vec2 { return Vec2{e.X, e.Y} }

// SetPosition sets X and Y.
func (e *Entity) SetPosition(x, y float64) {
	e.X = x
	e.Y = y
}

// Bounds returns the shape's bounding box at the current position. An entity
// without a shape reports a zero-size box at its position.
func (e *Entity) Bounds() Bounds {
	if e.shape == nil {
		return Bounds{e.X, e.Y, e.X, e.Y}
	}
	return e.shape.Aabb(e.X, e.Y)
}

// RequestRemove flags the entity for removal. The entity stays in the world,
// and keeps taking part in collision tests of the current Update, until the
// next RemoveEntity pass.
func (e *Entity) RequestRemove() { e.removeRequested = true }

// HasRemoveRequest reports whether RequestRemove was called.
func (e *Entity) HasRemoveRequest() bool { return e.removeRequested }

// IsAlive reports whether the entity still occupies its slot. It turns false
// once RemoveEntity reclaims it.
func (e *Entity) IsAlive() bool { return e.alive }

// AddTween attaches g so that Update advances it. Finished groups detach on
// their own.
func (e *Entity) AddTween(g *TweenGroup) {
	if g == nil {
		return
	}
	e.tweens = append(e.tweens, g)
}

// Tweens returns the attached tween groups. The returned slice MUST NOT be
// mutated.
func (e *Entity) Tweens() []*TweenGroup {
	return e.tweens
}

// Update advances the entity by dt seconds: velocity first, then attached
// tweens, then OnUpdate.
func (e *Entity) Update(dt float64) {
	if e.VX != 0 || e.VY != 0 {
		e.X += e.VX * dt
		e.Y += e.VY * dt
	}

	if len(e.tweens) > 0 {
		n := 0
		for _, g := range e.tweens {
			g.Update(float32(dt))
			if !g.Done {
				e.tweens[n] = g
				n++
			}
		}
		for i := n; i < len(e.tweens); i++ {
			e.tweens[i] = nil
		}
		e.tweens = e.tweens[:n]
	}

	if e.OnUpdate != nil {
		e.OnUpdate(e, dt)
	}
}
