package arena

import "unsafe"

// block owns one contiguous buffer plus the bump cursor into it. The cursor
// only moves forward, except through reset or an arena-driven rewind.
// Invariant: 0 <= off <= len(buf).
type block struct {
	buf []byte // backing memory, owned by the arena's Memory source
	off int    // index of the next free byte
}

// alloc reserves size bytes aligned to align and returns the starting offset
// of the reservation. Alignment is computed against the real base address of
// the buffer, so the returned region's address is a multiple of align.
// align must be a power of two; the arena validates layouts before routing
// here.
func (b *block) alloc(size, align int) (int, error) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
	mask := uintptr(align) - 1
	aligned := int((base+uintptr(b.off)+mask)&^mask - base)
	if aligned+size > len(b.buf) {
		return 0, ErrInsufficientMemory
	}
	b.off = aligned + size
	return aligned, nil
}

// reset rewinds the cursor to the start of the block. Memory is not zeroed.
func (b *block) reset() {
	b.off = 0
}

// resetZeroed rewinds the cursor and overwrites the whole buffer with zero
// bytes.
func (b *block) resetZeroed() {
	b.off = 0
	clear(b.buf)
}

// rewindTo sets the cursor to a previously recorded offset. The caller must
// guarantee the offset is an earlier cursor value of this block; that is the
// arena's snapshot bookkeeping, not re-verified here.
func (b *block) rewindTo(off int) {
	b.off = off
}

func (b *block) len() int {
	return b.off
}

func (b *block) cap() int {
	return len(b.buf)
}

func (b *block) remaining() int {
	return len(b.buf) - b.off
}
