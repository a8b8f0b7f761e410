// Package spatialgrid is a uniform-grid broad-phase collision world for 2D
// games.
//
// A [World] tracks moving, shaped, group-tagged entities. Every
// [World.Update] it buckets the active entities into grid cells by bounding
// box, walks each cell for candidate pairs, skips pairs already tested this
// frame, looks up a [Handler] by the pair's group ids and calls it only when
// the narrow-phase [IsCollision] test confirms the overlap.
//
// # Quick start
//
//	const (
//		groupPlayer spatialgrid.GroupID = iota
//		groupEnemy
//	)
//
//	w := spatialgrid.NewWorld()
//	w.SetWorldSize(800, 600, 16, 12, 1024)
//	w.RegisterHandler(groupPlayer, groupEnemy, nil, func(ctx spatialgrid.CollisionContext) {
//		ctx.A.RequestRemove() // player
//		ctx.B.RequestRemove() // enemy
//	})
//
//	player := w.AddEntity(groupPlayer, spatialgrid.Vec2{X: 400, Y: 500},
//		spatialgrid.MakeRectangle(spatialgrid.Vec2{X: -16, Y: -16}, spatialgrid.Vec2{X: 16, Y: 16}))
//
//	// each frame
//	w.Update(dt)
//	if p := w.Entity(player); p != nil {
//		// draw p at (p.X, p.Y)
//	}
//
// # Shapes
//
// Three shapes are supported, all defined relative to the owning entity's
// position: [Circle], [Rectangle] (axis-aligned) and [Line] (a segment).
// Every pair of kinds has an exact test.
//
// # Entity lifetime
//
// [World.AddEntity] returns a [Handle]. Resolve it with [World.Entity]; a
// handle whose entity has been removed resolves to nil, even after its slot
// has been reused. [Entity.RequestRemove] only flags an entity: it keeps
// taking part in the current frame's collision tests and is reclaimed by the
// removal pass that follows them.
//
// # Handlers
//
// Handlers are registered per unordered pair of groups. The value passed as
// data at registration is handed back in [CollisionContext.Data], so game
// state reaches a handler explicitly rather than through closures. For pairs
// of distinct groups, ctx.A always belongs to the first group of the
// registration.
//
// # Supporting features
//
// Entities carry a manual velocity and tween groups (via [gween]) that
// [Entity.Update] advances. Worlds can be configured from YAML
// ([ParseWorldConfig]), driven by YAML scenario scripts ([LoadScript]), and
// captured as [Snapshot] values. The persist, debugdraw and ecs packages add
// storage via gdata, Ebitengine debug rendering and a [Donburi] event bridge.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package spatialgrid
