package searchlru

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by New when capacity is not positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrNilCompare is returned by NewFunc when no key comparison is given.
	ErrNilCompare = errors.New("key comparison must not be nil")
)

// CapacityError reports the rejected capacity.
//
// It unwraps to ErrInvalidCapacity, so errors.Is(err, ErrInvalidCapacity) holds.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrInvalidCapacity }

// invariant panics with a searchlru-prefixed message. It marks states that can
// only be reached through a bug in this package.
func invariant(format string, args ...any) {
	panic(fmt.Sprintf("searchlru: invariant violated: "+format, args...))
}
