package arena

// Snapshot is a lightweight capture of an arena's allocation frontier: the
// index of the last block and that block's cursor at capture time. It is only
// meaningful for the arena instance that produced it; rewinding with a
// snapshot from a different or since-released arena is outside the contract.
type Snapshot struct {
	block int
	off   int
}

// Snapshot records the current allocation frontier for a later RewindTo.
func (a *Arena) Snapshot() Snapshot {
	a.panicIfReleased()
	last := len(a.blocks) - 1
	return Snapshot{block: last, off: a.blocks[last].off}
}

// RewindTo restores the frontier captured by s: the snapshot's block is
// rewound to its recorded cursor and every block created after it is fully
// reset. Memory allocated since the snapshot is reclaimed for reuse; blocks
// appended since then stay allocated, just empty.
//
// A snapshot whose block index no longer exists is ignored. Beyond that,
// consistency is the caller's contract: a snapshot from another arena, or
// one taken before a Reset, yields an unspecified frontier.
func (a *Arena) RewindTo(s Snapshot) {
	a.panicIfReleased()
	if s.block < 0 || s.block >= len(a.blocks) {
		return
	}
	a.blocks[s.block].rewindTo(s.off)
	for _, b := range a.blocks[s.block+1:] {
		b.reset()
	}
	a.gen++
}

// Scope brackets body between a Snapshot and a RewindTo, so every allocation
// made inside body is reclaimed when the scope exits, including on panic.
// Scopes nest: an inner scope only needs its own entry snapshot, and the
// outer rewind subsumes whatever the inner one already reclaimed.
func (a *Arena) Scope(body func(*Arena) error) error {
	s := a.Snapshot()
	defer a.RewindTo(s)
	return body(a)
}
