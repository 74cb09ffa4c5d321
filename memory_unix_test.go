//go:build unix

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapMemory(t *testing.T) {
	a, err := New(4096, WithMemory(MmapMemory{}))
	require.NoError(t, err)
	defer a.Release()

	buf, err := a.AllocBytes(1024)
	require.NoError(t, err)
	require.Len(t, buf, 1024)

	// Mapped pages are writable and readable.
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		require.Equal(t, byte(i), buf[i])
	}

	// Growth works across mappings too.
	big, err := a.AllocBytes(8192)
	require.NoError(t, err)
	assert.Len(t, big, 8192)
	assert.Equal(t, 2, a.NumBlocks())
}

func TestMmapMemory_InvalidSize(t *testing.T) {
	assert.Nil(t, MmapMemory{}.Alloc(0))
	assert.Nil(t, MmapMemory{}.Alloc(-1))
	assert.NotPanics(t, func() { MmapMemory{}.Free(nil) })
}
