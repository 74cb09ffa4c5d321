// Package arena implements a region-based bump allocator for Go.
//
// # Overview
//
// An arena hands out memory by advancing a cursor through large contiguous
// blocks, so many short-lived objects that share a lifetime can be allocated
// cheaply and reclaimed together in one operation. This is particularly
// useful for:
//
//   - Request- or task-scoped allocations with batch cleanup
//   - Parsers and builders that produce many small temporary objects
//   - Reducing garbage collection pressure
//   - Workloads that want predictable allocation behavior
//
// There is no per-object free, no compaction, and no persistence; reclamation
// happens only through Reset, RewindTo, Scope exit, or Release.
//
// # Basic Usage
//
//	a, err := arena.New(4096)
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	// Raw bytes
//	buf, err := a.AllocBytes(1024)
//
//	// Typed values and slices
//	p, err := arena.Alloc(a, Point{X: 1, Y: 2})
//	ints, err := arena.AllocSlice[int64](a, 100)
//	s, err := arena.AllocString(a, "copied into the arena")
//
//	// Reclaim everything at once, keeping the blocks for reuse
//	a.Reset()
//
// # Snapshots and Scopes
//
// Snapshot captures the allocation frontier; RewindTo restores it, reclaiming
// everything allocated in between while keeping the blocks themselves:
//
//	snap := a.Snapshot()
//	// ... temporary allocations ...
//	a.RewindTo(snap)
//
// Scope wraps the pattern around a function and rewinds on the way out, even
// on panic. Scopes nest arbitrarily:
//
//	err := a.Scope(func(a *arena.Arena) error {
//		tmp, err := a.AllocBytes(512)
//		// tmp is reclaimed when the scope returns
//		return err
//	})
//
// # Validity of Returned Memory
//
// Every pointer, slice, or string returned by an allocation call borrows
// arena-owned memory. The borrow ends at the next Reset, RewindTo, Scope
// exit, or Release that reclaims its region; using it past that point aliases
// it with later allocations. View wraps a pointer with a generation check
// that turns such misuse into a fail-fast panic:
//
//	v := arena.ViewOf(a, p)
//	a.Reset()
//	v.Get() // panics instead of returning reclaimed memory
//
// Arena memory is opaque to the garbage collector: values stored in it must
// not contain Go pointers unless their referents are kept alive elsewhere.
//
// # Block Growth
//
// Blocks default to the size passed to New. A request larger than that
// creates a block sized to exactly fit it. Allocation scans blocks in
// creation order and takes the first fit, so small requests can keep filling
// earlier blocks after a large one forced growth.
//
// # Memory Sources
//
// Block memory comes from a pluggable Memory source. The default is the Go
// heap; on unix builds MmapMemory serves blocks from anonymous mappings that
// are unmapped eagerly on Release:
//
//	a, err := arena.New(1<<20, arena.WithMemory(arena.MmapMemory{}))
//
// # Thread Safety
//
// Arena is not goroutine-safe. All operations assume single-owner, exclusive
// access; callers that share an arena across goroutines must synchronize
// externally.
//
// # Errors
//
// Fallible operations return ErrZeroSize, ErrBadAlignment, or
// ErrInsufficientMemory. There is no internal retry and no partial success;
// a failed allocation changes nothing.
//
// # Diagnostics
//
// Metrics returns usage counters; Dump writes a per-block usage report to a
// writer for debugging.
package arena
