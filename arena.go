// Package arena implements a region-based bump allocator. Typical usage:
// create one arena per unit of work, allocate many temporary objects from it,
// then Reset() at the end for O(1) cleanup, or bracket the work in a Scope
// so the cleanup happens automatically.
package arena

import "math"

// DefaultBlockSize is the default block size for new arenas (64 KiB).
const DefaultBlockSize = 1 << 16

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithMemory sets the source the arena requests block memory from.
// The default source is the Go heap.
func WithMemory(mem Memory) Option {
	return func(a *Arena) { a.mem = mem }
}

// Arena is a region-based bump allocator over a growable, append-only
// sequence of blocks. Not goroutine-safe: all mutating operations assume
// exclusive access, and sharing across goroutines needs external
// synchronization.
type Arena struct {
	blocks    []*block
	blockSize int
	mem       Memory

	// gen counts reclamations. Every Reset, RewindTo, Scope exit, and
	// Release bumps it, which is what invalidates outstanding Views.
	gen uint64
}

// New creates an Arena whose blocks default to blockSize bytes, allocating
// the first block eagerly. Fails with ErrZeroSize when blockSize is zero,
// ErrBadAlignment when it is negative, and ErrInsufficientMemory when the
// memory source cannot satisfy the request.
func New(blockSize int, opts ...Option) (*Arena, error) {
	if blockSize == 0 {
		return nil, ErrZeroSize
	}
	if err := checkLayout(blockSize, 1); err != nil {
		return nil, err
	}
	a := &Arena{blockSize: blockSize, mem: heapMemory{}}
	for _, opt := range opts {
		opt(a)
	}
	if _, err := a.grow(blockSize); err != nil {
		return nil, err
	}
	return a, nil
}

// NewDefault creates an Arena with DefaultBlockSize blocks.
func NewDefault(opts ...Option) (*Arena, error) {
	return New(DefaultBlockSize, opts...)
}

// AllocBytes reserves n bytes and returns the region as a slice with its
// capacity clipped to its length. Byte regions carry no alignment
// requirement, so consecutive requests pack tightly. Fails with ErrZeroSize
// when n is zero.
//
// The slice borrows arena-owned memory: it stays valid only until the next
// Reset, RewindTo, Scope exit, or Release that reclaims its region.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, ErrZeroSize
	}
	b, off, err := a.alloc(n, 1)
	if err != nil {
		return nil, err
	}
	return b.buf[off : off+n : off+n], nil
}

// alloc reserves size bytes aligned to align, growing the arena when no
// existing block can satisfy the request. Blocks are tried in creation
// order; arenas hold few blocks, so a linear first-fit scan beats a fancier
// index.
func (a *Arena) alloc(size, align int) (*block, int, error) {
	a.panicIfReleased()
	if err := checkLayout(size, align); err != nil {
		return nil, 0, err
	}
	for _, b := range a.blocks {
		if off, err := b.alloc(size, align); err == nil {
			return b, off, nil
		}
	}
	b, err := a.grow(size)
	if err != nil {
		return nil, 0, err
	}
	off, err := b.alloc(size, align)
	if err != nil {
		return nil, 0, err
	}
	return b, off, nil
}

// grow appends a new block sized max(blockSize, min).
func (a *Arena) grow(min int) (*block, error) {
	size := a.blockSize
	if min > size {
		size = min
	}
	buf := a.mem.Alloc(size)
	if buf == nil {
		return nil, ErrInsufficientMemory
	}
	b := &block{buf: buf}
	a.blocks = append(a.blocks, b)
	return b, nil
}

// Reset rewinds every block's cursor to its start, keeping all block buffers
// for reuse. No memory is released and nothing is zeroed; previously returned
// regions will be handed out again by subsequent allocations.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for _, b := range a.blocks {
		b.reset()
	}
	a.gen++
}

// ResetZeroed is Reset plus a zero-fill of every block's bytes.
func (a *Arena) ResetZeroed() {
	a.panicIfReleased()
	for _, b := range a.blocks {
		b.resetZeroed()
	}
	a.gen++
}

// Release frees every block back to the memory source and makes the arena
// unusable. Any subsequent allocation, reset, or snapshot operation panics.
func (a *Arena) Release() {
	if a.blocks == nil {
		return
	}
	for _, b := range a.blocks {
		a.mem.Free(b.buf)
		b.buf = nil
	}
	a.blocks = nil
	a.gen++
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.blocks == nil {
		panic("arena: use after Release()")
	}
}

// checkLayout rejects size/alignment pairs the allocator cannot represent:
// alignments that are not powers of two, negative sizes, and sizes that would
// overflow once alignment padding is added.
func checkLayout(size, align int) error {
	if align <= 0 || align&(align-1) != 0 {
		return ErrBadAlignment
	}
	if size < 0 || size > math.MaxInt-align {
		return ErrBadAlignment
	}
	return nil
}
