package arena

// Len returns the total number of bytes currently allocated across all
// blocks. This includes internal fragmentation due to alignment.
func (a *Arena) Len() int {
	sum := 0
	for _, b := range a.blocks {
		sum += b.len()
	}
	return sum
}

// Cap returns the total capacity (in bytes) of all blocks in the arena.
func (a *Arena) Cap() int {
	sum := 0
	for _, b := range a.blocks {
		sum += b.cap()
	}
	return sum
}

// IsEmpty reports whether no bytes are currently allocated.
func (a *Arena) IsEmpty() bool {
	return a.Len() == 0
}

// NumBlocks returns the number of blocks currently held by the arena.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// BlockSize returns the default block size used by this arena.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to
// 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	c := a.Cap()
	if c == 0 {
		return 0
	}
	return float64(a.Len()) / float64(c)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		BytesUsed:   a.Len(),
		Capacity:    a.Cap(),
		NumBlocks:   a.NumBlocks(),
		BlockSize:   a.BlockSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	BytesUsed   int     // Bytes currently allocated, padding included
	Capacity    int     // Total capacity in bytes
	NumBlocks   int     // Number of blocks
	BlockSize   int     // Default block size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
