package arena

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAlloc(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)

	p, err := Alloc(a, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, *p)
	assert.Zero(t, uintptr(unsafe.Pointer(p))%unsafe.Alignof(*p),
		"value should be naturally aligned")

	s, err := Alloc(a, testStruct{a: 1, b: 2, c: 3, d: 4})
	require.NoError(t, err)
	assert.Equal(t, testStruct{a: 1, b: 2, c: 3, d: 4}, *s)
	assert.Zero(t, uintptr(unsafe.Pointer(s))%unsafe.Alignof(*s))

	// Allocated memory is writable through the returned pointer.
	s.a = 100
	assert.Equal(t, int64(100), s.a)
}

func TestAlloc_ZeroSizedType(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)

	p, err := Alloc(a, struct{}{})
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Zero(t, a.Len(), "zero-sized values should not consume arena space")
}

func TestAllocSlice(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)

	// Dirty the block first so the zero-initialization is observable.
	buf, err := a.AllocBytes(512)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = 0xFF
	}
	a.Reset()

	vals, err := AllocSlice[int64](a, 10)
	require.NoError(t, err)
	require.Len(t, vals, 10)
	for i, v := range vals {
		assert.Zero(t, v, "element %d should be zero-initialized", i)
	}
	assert.Zero(t, uintptr(unsafe.Pointer(unsafe.SliceData(vals)))%unsafe.Alignof(vals[0]))

	empty, err := AllocSlice[int64](a, 0)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = AllocSlice[int64](a, -1)
	assert.ErrorIs(t, err, ErrBadAlignment)
}

func TestAllocSlice_Overflow(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)

	_, err = AllocSlice[int64](a, math.MaxInt/4)
	assert.ErrorIs(t, err, ErrBadAlignment)
}

func TestCopySlice(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)

	src := []int32{1, 2, 3, 4, 5}
	dst, err := CopySlice(a, src)
	require.NoError(t, err)
	assert.Equal(t, src, dst)

	// The copy shares no memory with the source.
	dst[0] = 99
	assert.Equal(t, int32(1), src[0])

	none, err := CopySlice(a, []int32(nil))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAllocString(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)

	texts := []string{
		"test str",
		"héllo wörld",
		"\x00binary\xff bytes\x00",
	}
	for _, want := range texts {
		got, err := AllocString(a, want)
		require.NoError(t, err)
		assert.Equal(t, want, got, "copy should be byte-for-byte identical")
	}

	empty, err := AllocString(a, "")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestAlloc_InsufficientMemory(t *testing.T) {
	a, err := New(32, WithMemory(&failingMemory{remaining: 1}))
	require.NoError(t, err)

	_, err = Alloc(a, [32]byte{})
	require.NoError(t, err)

	_, err = Alloc(a, int64(7))
	assert.ErrorIs(t, err, ErrInsufficientMemory)

	_, err = AllocSlice[int64](a, 4)
	assert.ErrorIs(t, err, ErrInsufficientMemory)

	_, err = AllocString(a, "does not fit")
	assert.ErrorIs(t, err, ErrInsufficientMemory)
}
