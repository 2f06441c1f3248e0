package iulist

import "errors"

var (
	// ErrOutOfBounds indicates an index outside the valid range for the operation.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrNotFound indicates a target element was not found.
	ErrNotFound = errors.New("element not found")
	// ErrEmpty indicates an operation that needs an element was called on an empty list.
	ErrEmpty = errors.New("list is empty")
	// ErrEndOfSequence indicates a cursor move past either end of the list.
	ErrEndOfSequence = errors.New("no more elements")
	// ErrIllegalState indicates Set or Remove was called on a cursor without a preceding move.
	ErrIllegalState = errors.New("cursor has no current element")
	// ErrStaleCursor indicates the list was modified outside the cursor.
	ErrStaleCursor = errors.New("list modified outside cursor")
)
