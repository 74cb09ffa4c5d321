package arena

import (
	"fmt"
	"io"
	"unsafe"
)

// Dump writes a human-readable account of per-block usage to w: block count,
// and for each block its base address, used bytes, capacity, and remaining
// space. Diagnostic only; the format is not stable.
func (a *Arena) Dump(w io.Writer) {
	fmt.Fprintf(w, "arena: %d block(s), %d/%d bytes used, default block size %d\n",
		a.NumBlocks(), a.Len(), a.Cap(), a.blockSize)
	for i, b := range a.blocks {
		fmt.Fprintf(w, "  block %d: base=%p used=%d cap=%d remaining=%d\n",
			i, unsafe.SliceData(b.buf), b.len(), b.cap(), b.remaining())
	}
}
