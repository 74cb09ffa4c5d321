package arena

// View is a generation-checked handle to an arena-allocated value. The arena
// bumps its generation on every Reset, RewindTo, Scope exit, and Release, so
// a view captured before one of those refuses to hand its pointer back
// instead of silently aliasing later allocations.
//
// Views are an opt-in guard; the allocation helpers return raw pointers.
type View[T any] struct {
	arena *Arena
	gen   uint64
	ptr   *T
}

// ViewOf binds p to a's current allocation generation.
func ViewOf[T any](a *Arena, p *T) View[T] {
	return View[T]{arena: a, gen: a.gen, ptr: p}
}

// Get returns the underlying pointer. It panics if the arena has reclaimed
// memory since the view was captured.
func (v View[T]) Get() *T {
	if !v.Valid() {
		panic("arena: view used after reset")
	}
	return v.ptr
}

// Valid reports whether the view still refers to live arena memory.
func (v View[T]) Valid() bool {
	return v.arena != nil && v.arena.gen == v.gen
}
