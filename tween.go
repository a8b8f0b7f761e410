package spatialgrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Entity simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenVelocity,
// TweenRotation) and either attach it with Entity.AddTween or call Update(dt)
// yourself each frame. If the target entity is removed from its world, the
// group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Entity
	handle Handle
	Done   bool
}

func newTweenGroup(e *Entity, count int) *TweenGroup {
	return &TweenGroup{count: count, target: e, handle: e.handle}
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target entity has been reclaimed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target == nil || !g.target.alive || g.target.handle != g.handle {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that moves e.X and e.Y to the given
// target over the duration using the easing function.
func TweenPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(e, 2)
	g.tweens[0] = gween.New(float32(e.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Y), float32(toY), duration, fn)
	g.fields[0] = &e.X
	g.fields[1] = &e.Y
	return g
}

// TweenVelocity creates a TweenGroup that changes e.VX and e.VY to the given
// target over the duration, for eased acceleration and braking.
func TweenVelocity(e *Entity, toVX, toVY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(e, 2)
	g.tweens[0] = gween.New(float32(e.VX), float32(toVX), duration, fn)
	g.tweens[1] = gween.New(float32(e.VY), float32(toVY), duration, fn)
	g.fields[0] = &e.VX
	g.fields[1] = &e.VY
	return g
}

// TweenRotation creates a TweenGroup that animates e.Rotation to the target
// value over the duration using the easing function.
func TweenRotation(e *Entity, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(e, 1)
	g.tweens[0] = gween.New(float32(e.Rotation), float32(to), duration, fn)
	g.fields[0] = &e.Rotation
	return g
}
