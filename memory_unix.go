//go:build unix

package arena

import "golang.org/x/sys/unix"

// MmapMemory sources block memory from anonymous private mappings instead of
// the Go heap. Blocks are unmapped eagerly when the arena is released, so the
// memory is returned to the operating system without waiting for a GC cycle.
//
//	a, err := arena.New(1<<20, arena.WithMemory(arena.MmapMemory{}))
type MmapMemory struct{}

func (MmapMemory) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return buf
}

func (MmapMemory) Free(buf []byte) {
	if buf == nil {
		return
	}
	// Munmap needs the slice handed out by Mmap; the arena always frees whole
	// block buffers, never subslices.
	_ = unix.Munmap(buf)
}

var _ Memory = MmapMemory{}
