package list

import "github.com/mgnsk/iulist"

var _ iulist.ListIterator[int] = (*Cursor[int])(nil)

// move records how the cursor reached its current element.
type move uint8

const (
	moveNone move = iota
	moveNext
	movePrevious
)

// Cursor is a bidirectional list iterator.
//
// A cursor sits in one of Len()+1 slots between elements. Next and Previous return
// the element they pass over, which then becomes the target of Set and Remove.
// Add inserts at the slot and leaves the cursor after the new element.
//
// A cursor is invalidated by any modification of the list made through another
// cursor or through the list itself. Its methods then return iulist.ErrStaleCursor.
type Cursor[T any] struct {
	list     *List[T]
	next     *node[T] // nil past the tail
	last     *node[T]
	move     move
	index    int
	revision uint64
}

// HasNext reports whether there is an element after the cursor.
func (c *Cursor[T]) HasNext() (bool, error) {
	if err := c.validate(); err != nil {
		return false, err
	}
	return c.next != nil, nil
}

// HasPrevious reports whether there is an element before the cursor.
func (c *Cursor[T]) HasPrevious() (bool, error) {
	if err := c.validate(); err != nil {
		return false, err
	}
	return c.index > 0, nil
}

// Next returns the element after the cursor and advances past it.
func (c *Cursor[T]) Next() (T, error) {
	var zero T

	if err := c.validate(); err != nil {
		return zero, err
	}

	if c.next == nil {
		return zero, iulist.ErrEndOfSequence
	}

	return c.step(), nil
}

// Previous returns the element before the cursor and moves back before it.
func (c *Cursor[T]) Previous() (T, error) {
	var zero T

	if err := c.validate(); err != nil {
		return zero, err
	}

	if c.index == 0 {
		return zero, iulist.ErrEndOfSequence
	}

	return c.retreat(), nil
}

// NextIndex returns the index of the element Next would return,
// or Len() past the last element.
func (c *Cursor[T]) NextIndex() (int, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	return c.index, nil
}

// PreviousIndex returns the index of the element Previous would return,
// or -1 before the first element.
func (c *Cursor[T]) PreviousIndex() (int, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	return c.index - 1, nil
}

// Set replaces the element last returned by Next or Previous.
func (c *Cursor[T]) Set(element T) error {
	if err := c.validate(); err != nil {
		return err
	}

	if c.move == moveNone {
		return iulist.ErrIllegalState
	}

	c.set(element)

	return nil
}

// Remove removes the element last returned by Next or Previous.
// A second Remove without an intervening move fails with iulist.ErrIllegalState.
func (c *Cursor[T]) Remove() error {
	if err := c.validate(); err != nil {
		return err
	}

	if c.move == moveNone {
		return iulist.ErrIllegalState
	}

	c.remove()

	return nil
}

// Add inserts element at the cursor position. A following Previous returns the
// new element, a following Next is unaffected. Set and Remove are not allowed
// until the next move.
func (c *Cursor[T]) Add(element T) error {
	if err := c.validate(); err != nil {
		return err
	}

	c.add(element)

	return nil
}

func (c *Cursor[T]) validate() error {
	if c.revision != c.list.revision {
		return iulist.ErrStaleCursor
	}
	return nil
}

// step moves forward over the next node. The cursor must not be past the tail.
func (c *Cursor[T]) step() T {
	n := c.next
	c.last = n
	c.move = moveNext
	c.next = n.next
	c.index++

	return n.element
}

// retreat moves back over the previous node. The cursor must not be at the head.
func (c *Cursor[T]) retreat() T {
	var n *node[T]
	if c.next == nil {
		n = c.list.tail
	} else {
		n = c.next.prev
	}

	c.next = n
	c.last = n
	c.move = movePrevious
	c.index--

	return n.element
}

func (c *Cursor[T]) set(element T) {
	c.last.element = element
	c.touch()
}

// remove unlinks the last returned node.
func (c *Cursor[T]) remove() {
	l := c.list
	n := c.last

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	switch c.move {
	case moveNext:
		c.index--
	case movePrevious:
		c.next = n.next
	}

	n.prev = nil
	n.next = nil

	c.last = nil
	c.move = moveNone
	l.size--
	c.touch()
}

// add links a new node before the next node.
func (c *Cursor[T]) add(element T) {
	l := c.list
	n := &node[T]{
		element: element,
		next:    c.next,
	}

	if c.next == nil {
		n.prev = l.tail
		l.tail = n
	} else {
		n.prev = c.next.prev
		c.next.prev = n
	}

	if n.prev == nil {
		l.head = n
	} else {
		n.prev.next = n
	}

	c.last = nil
	c.move = moveNone
	c.index++
	l.size++
	c.touch()
}

// touch records a modification made through the cursor.
func (c *Cursor[T]) touch() {
	c.list.revision++
	c.revision = c.list.revision
}
