package arena

import "errors"

var (
	// ErrZeroSize indicates a requested block size was zero.
	ErrZeroSize = errors.New("arena: size must be positive")

	// ErrBadAlignment indicates an invalid size/alignment pairing: a negative
	// size, an alignment that is not a power of two, or a combination that
	// would overflow the address space.
	ErrBadAlignment = errors.New("arena: invalid size or alignment")

	// ErrInsufficientMemory indicates a block lacked remaining capacity for a
	// request, or the underlying memory source failed.
	ErrInsufficientMemory = errors.New("arena: insufficient memory")
)
