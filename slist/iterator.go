package slist

import "github.com/mgnsk/iulist"

var _ iulist.Iterator[int] = (*Iterator[int])(nil)

// Iterator is a forward iterator over a singly linked list.
//
// It is invalidated by any modification of the list not made through it.
type Iterator[T any] struct {
	list *List[T]
	next *node[T]
	last *node[T]
	// prev precedes last, nil when last is the head.
	prev     *node[T]
	revision uint64
}

// HasNext reports whether there is an element after the iterator.
func (it *Iterator[T]) HasNext() (bool, error) {
	if it.revision != it.list.revision {
		return false, iulist.ErrStaleCursor
	}
	return it.next != nil, nil
}

// Next returns the next element and advances the iterator.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if ok, err := it.HasNext(); err != nil {
		return zero, err
	} else if !ok {
		return zero, iulist.ErrEndOfSequence
	}

	if it.last != nil {
		it.prev = it.last
	}
	it.last = it.next
	it.next = it.next.next

	return it.last.element, nil
}

// Remove removes the element last returned by Next.
func (it *Iterator[T]) Remove() error {
	if it.revision != it.list.revision {
		return iulist.ErrStaleCursor
	}

	if it.last == nil {
		return iulist.ErrIllegalState
	}

	it.list.unlinkAfter(it.prev)
	it.last = nil
	it.revision = it.list.revision

	return nil
}
