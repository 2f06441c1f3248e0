/*
Package slist implements an indexed unsorted singly linked list.

It satisfies the same iulist.IndexedUnsortedList contract as package list but only
offers a forward iterator.
*/
package slist

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/mgnsk/iulist"
)

var _ iulist.IndexedUnsortedList[int] = (*List[int])(nil)

type node[T any] struct {
	element T
	next    *node[T]
}

// List is a singly linked list.
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
	l.linkAfter(nil, element)
}

// AddToRear inserts an element at the back of the list.
func (l *List[T]) AddToRear(element T) {
	l.linkAfter(l.tail, element)
}

// Add inserts an element at the back of the list.
func (l *List[T]) Add(element T) {
	l.AddToRear(element)
}

// AddAt inserts an element before the element at index.
func (l *List[T]) AddAt(index int, element T) error {
	if index < 0 || index > l.size {
		return l.outOfBounds(index)
	}

	l.linkAfter(l.nodeBefore(index), element)

	return nil
}

// AddAfter inserts element immediately after the first element equal to target.
func (l *List[T]) AddAfter(element, target T) error {
	for n := l.head; n != nil; n = n.next {
		if l.eq(n.element, target) {
			l.linkAfter(n, element)
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
	return l.nodeAt(index).element, nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, element T) error {
	if index < 0 || index >= l.size {
		return l.outOfBounds(index)
	}

	l.nodeAt(index).element = element
	l.revision++

	return nil
}

// RemoveAt removes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, l.outOfBounds(index)
	}
	return l.unlinkAfter(l.nodeBefore(index)), nil
}

// Remove removes and returns the first element equal to target.
func (l *List[T]) Remove(target T) (T, error) {
	var prev *node[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if l.eq(n.element, target) {
			return l.unlinkAfter(prev), nil
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
	return l.unlinkAfter(nil), nil
}

// RemoveLast removes and returns the last element. It walks the whole list.
func (l *List[T]) RemoveLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, iulist.ErrEmpty
	}
	return l.unlinkAfter(l.nodeBefore(l.size - 1)), nil
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

// Iterator returns a forward iterator positioned before the first element.
func (l *List[T]) Iterator() iulist.Iterator[T] {
	return &Iterator[T]{
		list:     l,
		next:     l.head,
		revision: l.revision,
	}
}

// Values returns an iterator over elements in order.
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

// nodeAt returns the node at index in [0, size).
func (l *List[T]) nodeAt(index int) *node[T] {
	if index == l.size-1 {
		return l.tail
	}

	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// nodeBefore returns the node preceding index or nil for index 0.
func (l *List[T]) nodeBefore(index int) *node[T] {
	if index == 0 {
		return nil
	}
	return l.nodeAt(index - 1)
}

// linkAfter inserts a new node after prev, or at the front when prev is nil.
func (l *List[T]) linkAfter(prev *node[T], element T) {
	n := &node[T]{element: element}

	if prev == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}

	if n.next == nil {
		l.tail = n
	}

	l.size++
	l.revision++
}

// unlinkAfter removes the node after prev, or the head when prev is nil.
func (l *List[T]) unlinkAfter(prev *node[T]) T {
	var n *node[T]
	if prev == nil {
		n = l.head
		l.head = n.next
	} else {
		n = prev.next
		prev.next = n.next
	}

	if n == l.tail {
		l.tail = prev
	}

	n.next = nil
	l.size--
	l.revision++

	return n.element
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

	if l.tail == nil || l.tail.next != nil {
		return errors.New("tail is missing or has a next node")
	}

	n := l.head
	for i := 1; i < l.size; i++ {
		if n == nil {
			return fmt.Errorf("walk ended after %d of %d nodes", i-1, l.size)
		}
		n = n.next
	}
	if n != l.tail {
		return fmt.Errorf("walk of %d nodes does not end at tail", l.size)
	}

	return nil
}
