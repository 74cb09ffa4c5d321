package arena

import "unsafe"

// Alloc reserves space sized and aligned for T, writes v into it, and returns
// a pointer into arena-owned memory. The pointer stays valid until the next
// Reset, RewindTo, Scope exit, or Release that reclaims its region.
//
// Arena memory is opaque to the garbage collector, so T must not contain Go
// pointers (including strings, slices, maps, and interfaces) unless the
// referents are kept alive elsewhere.
func Alloc[T any](a *Arena, v T) (*T, error) {
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		// Zero-sized types occupy no arena space.
		return &v, nil
	}
	b, off, err := a.alloc(size, int(unsafe.Alignof(v)))
	if err != nil {
		return nil, err
	}
	p := (*T)(unsafe.Pointer(&b.buf[off]))
	*p = v
	return p, nil
}

// AllocSlice reserves a zero-initialized region for n elements of T and
// returns it as a slice. n == 0 yields a nil slice; a negative n fails with
// ErrBadAlignment.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrBadAlignment
	}
	if n == 0 {
		return nil, nil
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		return make([]T, n), nil
	}
	size, err := sliceLayout(elem, n)
	if err != nil {
		return nil, err
	}
	b, off, err := a.alloc(size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	// Block reuse after Reset leaves stale bytes behind, so the region is
	// cleared explicitly.
	clear(b.buf[off : off+size])
	return unsafe.Slice((*T)(unsafe.Pointer(&b.buf[off])), n), nil
}

// CopySlice reserves a region sized for src, copies src's elements in, and
// returns a slice over the copy. The copy shares no memory with src.
func CopySlice[T any](a *Arena, src []T) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		return make([]T, len(src)), nil
	}
	b, off, err := a.alloc(elem*len(src), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*T)(unsafe.Pointer(&b.buf[off])), len(src))
	copy(dst, src)
	return dst, nil
}

// AllocString copies s into the arena and returns a string over the copy.
// The copy is byte-for-byte; no encoding validation happens beyond it.
func AllocString(a *Arena, s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	b, off, err := a.alloc(len(s), 1)
	if err != nil {
		return "", err
	}
	copy(b.buf[off:off+len(s)], s)
	return unsafe.String(&b.buf[off], len(s)), nil
}

// sliceLayout returns elem*n, or ErrBadAlignment when the product would
// overflow.
func sliceLayout(elem, n int) (int, error) {
	size := elem * n
	if size/elem != n {
		return 0, ErrBadAlignment
	}
	return size, nil
}
