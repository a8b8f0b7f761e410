package spatialgrid

// CollisionContext carries the data passed to a Handler.
//
// When the two groups differ, A belongs to the first group given to the
// RegisterHandler call that installed the handler and B to the second. When
// both entities share a group, A and B are in grid encounter order.
type CollisionContext struct {
	World *World
	A, B  *Entity
	// Data is the value supplied at registration. Use it to hand game state
	// (score counters, sound players...) to the handler explicitly.
	Data any
}

// Handler reacts to a confirmed collision between two entities.
type Handler func(ctx CollisionContext)

// pairKey is an unordered pair of group ids stored with lo <= hi.
type pairKey struct {
	lo, hi GroupID
}

func makePairKey(a, b GroupID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

type handlerEntry struct {
	first GroupID // group whose entity is passed as ctx.A
	fn    Handler
	data  any
}

// handlerRegistry maps unordered group pairs to handlers.
type handlerRegistry struct {
	entries map[pairKey]handlerEntry
}

func (r *handlerRegistry) set(a, b GroupID, data any, fn Handler) {
	if r.entries == nil {
		r.entries = make(map[pairKey]handlerEntry)
	}
	r.entries[makePairKey(a, b)] = handlerEntry{first: a, fn: fn, data: data}
}

func (r *handlerRegistry) remove(a, b GroupID) {
	delete(r.entries, makePairKey(a, b))
}

func (r *handlerRegistry) lookup(a, b GroupID) (handlerEntry, bool) {
	e, ok := r.entries[makePairKey(a, b)]
	return e, ok
}

// RegisterHandler installs fn for collisions between groups a and b. The same
// handler serves (b, a). Registering an existing pair replaces its handler.
// data is delivered unchanged in CollisionContext.Data. A nil fn removes the
// pair instead.
func (w *World) RegisterHandler(a, b GroupID, data any, fn Handler) {
	if fn == nil {
		w.handlers.remove(a, b)
		return
	}
	w.handlers.set(a, b, data, fn)
}

// DeregisterHandler removes the handler for groups a and b, in either order.
func (w *World) DeregisterHandler(a, b GroupID) {
	w.handlers.remove(a, b)
}

// HasHandler reports whether a handler is registered for groups a and b.
func (w *World) HasHandler(a, b GroupID) bool {
	_, ok := w.handlers.lookup(a, b)
	return ok
}
