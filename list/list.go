/*
Package list implements an indexed unsorted doubly linked list with a bidirectional,
mutation-capable cursor.

Every positional operation positions a transient Cursor at the target index and
delegates to it, so the cursor is the only place where links are rewired.

Each list carries a revision that is bumped by every insert, remove and set.
A cursor caches the revision it last observed and fails with iulist.ErrStaleCursor
once the list is modified through any other path.
*/
package list

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/mgnsk/iulist"
)

var _ iulist.IndexedUnsortedList[int] = (*List[int])(nil)

// List is a doubly linked list.
//
// The zero value is a ready to use empty list that compares elements with iulist.DefaultEqual.
type List[T any] struct {
	head     *node[T]
	tail     *node[T]
	equal    func(a, b T) bool
	size     int
	revision uint64
}

// New creates an empty list.
func New[T any](opts ...iulist.Option[T]) *List[T] {
	o := iulist.NewOptions(opts...)

	return &List[T]{
		equal: o.Equal,
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// AddToFront inserts an element at the front of the list.
func (l *List[T]) AddToFront(element T) {
	l.seek(0).add(element)
}

// AddToRear inserts an element at the back of the list.
func (l *List[T]) AddToRear(element T) {
	l.seek(l.size).add(element)
}

// Add inserts an element at the back of the list.
func (l *List[T]) Add(element T) {
	l.AddToRear(element)
}

// AddAt inserts an element before the element at index.
// An index equal to Len() appends.
func (l *List[T]) AddAt(index int, element T) error {
	if index < 0 || index > l.size {
		return l.outOfBounds(index)
	}

	l.seek(index).add(element)

	return nil
}

// AddAfter inserts element immediately after the first element equal to target.
func (l *List[T]) AddAfter(element, target T) error {
	c := l.seek(0)

	for c.next != nil {
		if l.eq(c.step(), target) {
			c.add(element)
			return nil
		}
	}

	return iulist.ErrNotFound
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, l.outOfBounds(index)
	}

	return l.seek(index).step(), nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, element T) error {
	if index < 0 || index >= l.size {
		return l.outOfBounds(index)
	}

	c := l.seek(index)
	c.step()
	c.set(element)

	return nil
}

// RemoveAt removes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, l.outOfBounds(index)
	}

	c := l.seek(index)
	element := c.step()
	c.remove()

	return element, nil
}

// Remove removes and returns the first element equal to target.
func (l *List[T]) Remove(target T) (T, error) {
	c := l.seek(0)

	for c.next != nil {
		if element := c.step(); l.eq(element, target) {
			c.remove()
			return element, nil
		}
	}

	var zero T
	return zero, iulist.ErrNotFound
}

// RemoveFirst removes and returns the first element.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, iulist.ErrEmpty
	}

	c := l.seek(0)
	element := c.step()
	c.remove()

	return element, nil
}

// RemoveLast removes and returns the last element.
func (l *List[T]) RemoveLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, iulist.ErrEmpty
	}

	c := l.seek(l.size)
	element := c.retreat()
	c.remove()

	return element, nil
}

// First returns the first element.
func (l *List[T]) First() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, iulist.ErrEmpty
	}
	return l.head.element, nil
}

// Last returns the last element.
func (l *List[T]) Last() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, iulist.ErrEmpty
	}
	return l.tail.element, nil
}

// IndexOf returns the index of the first element equal to element or -1.
func (l *List[T]) IndexOf(element T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.eq(n.element, element) {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether the list has an element equal to target.
func (l *List[T]) Contains(target T) bool {
	return l.IndexOf(target) >= 0
}

// Iterator returns a forward cursor positioned before the first element.
func (l *List[T]) Iterator() iulist.Iterator[T] {
	return &Iterator[T]{c: l.seek(0)}
}

// ListIterator returns a cursor positioned before the first element.
func (l *List[T]) ListIterator() *Cursor[T] {
	return l.seek(0)
}

// ListIteratorAt returns a cursor positioned before the element at index.
// An index equal to Len() positions the cursor past the last element.
func (l *List[T]) ListIteratorAt(index int) (*Cursor[T], error) {
	if index < 0 || index > l.size {
		return nil, l.outOfBounds(index)
	}
	return l.seek(index), nil
}

// All returns an iterator over indices and elements in forward order.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.element) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over indices and elements in reverse order.
// The list must not be modified during iteration.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.element) {
				return
			}
			i--
		}
	}
}

// Values returns an iterator over elements in forward order.
// The list must not be modified during iteration.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.element) {
				return
			}
		}
	}
}

// String formats the list as "[e0, e1, ..., eN]".
func (l *List[T]) String() string {
	var b strings.Builder

	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", n.element)
	}
	b.WriteByte(']')

	return b.String()
}

// seek returns a cursor positioned before the element at index.
// The index must be in [0, size].
func (l *List[T]) seek(index int) *Cursor[T] {
	c := &Cursor[T]{
		list:     l,
		index:    index,
		revision: l.revision,
	}

	if index <= l.size/2 {
		c.next = l.head
		for i := 0; i < index; i++ {
			c.next = c.next.next
		}
	} else if index < l.size {
		c.next = l.tail
		for i := l.size - 1; i > index; i-- {
			c.next = c.next.prev
		}
	}

	return c
}

func (l *List[T]) eq(a, b T) bool {
	if l.equal == nil {
		return iulist.DefaultEqual(a, b)
	}
	return l.equal(a, b)
}

func (l *List[T]) outOfBounds(index int) error {
	return fmt.Errorf("%w: index %d, size %d", iulist.ErrOutOfBounds, index, l.size)
}

// check verifies the structural invariants of the chain.
func (l *List[T]) check() error {
	if l.size == 0 {
		if l.head != nil || l.tail != nil {
			return errors.New("empty list has head or tail")
		}
		return nil
	}

	if l.head == nil || l.tail == nil {
		return fmt.Errorf("list of size %d has no head or tail", l.size)
	}

	if l.head.prev != nil {
		return errors.New("head has a previous node")
	}

	if l.tail.next != nil {
		return errors.New("tail has a next node")
	}

	n := l.head
	for i := 1; i < l.size; i++ {
		if n.next == nil {
			return fmt.Errorf("forward walk ended after %d of %d nodes", i, l.size)
		}
		if n.next.prev != n {
			return fmt.Errorf("node %d is not linked back to node %d", i, i-1)
		}
		n = n.next
	}
	if n != l.tail {
		return fmt.Errorf("forward walk of %d nodes does not end at tail", l.size)
	}

	n = l.tail
	for i := 1; i < l.size; i++ {
		if n.prev == nil {
			return fmt.Errorf("backward walk ended after %d of %d nodes", i, l.size)
		}
		n = n.prev
	}
	if n != l.head {
		return fmt.Errorf("backward walk of %d nodes does not end at head", l.size)
	}

	return nil
}
