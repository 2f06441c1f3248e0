package list

import "github.com/mgnsk/iulist"

var _ iulist.Iterator[int] = (*Iterator[int])(nil)

// Iterator is a forward-only view of a Cursor.
type Iterator[T any] struct {
	c *Cursor[T]
}

// HasNext reports whether there is an element after the iterator.
func (it *Iterator[T]) HasNext() (bool, error) {
	return it.c.HasNext()
}

// Next returns the next element and advances the iterator.
func (it *Iterator[T]) Next() (T, error) {
	return it.c.Next()
}

// Remove removes the element last returned by Next.
func (it *Iterator[T]) Remove() error {
	return it.c.Remove()
}
