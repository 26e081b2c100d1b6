// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At, Set and Add return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value passed to Set or Add.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxAdd = "Add"
)

// denseErrorf wraps err with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
