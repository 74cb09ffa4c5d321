package arena

// Memory is the source an arena requests block memory from. Alloc returns a
// zeroed buffer of exactly size bytes, or nil when the request cannot be
// satisfied. Free releases a buffer previously returned by Alloc; it is only
// called when the owning arena is released.
type Memory interface {
	Alloc(size int) []byte
	Free(buf []byte)
}

// heapMemory is the default source: plain Go heap allocations, reclaimed by
// the garbage collector once the arena drops them.
type heapMemory struct{}

func (heapMemory) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (heapMemory) Free([]byte) {}
