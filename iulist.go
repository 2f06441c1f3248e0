/*
Package iulist defines the contracts shared by the indexed unsorted list implementations.

An indexed unsorted list keeps elements in insertion order and supports positional access.
The doubly-linked implementation with a bidirectional cursor lives in package list,
a singly-linked implementation lives in package slist.

None of the implementations are safe for concurrent use.
*/
package iulist

// Iterator is a forward cursor that can remove the element it last returned.
type Iterator[T any] interface {
	// HasNext reports whether Next would return an element.
	HasNext() (bool, error)
	// Next returns the next element and advances the cursor.
	Next() (T, error)
	// Remove removes the element last returned by Next.
	Remove() error
}

// ListIterator is a bidirectional cursor that can modify the list during traversal.
type ListIterator[T any] interface {
	Iterator[T]
	// HasPrevious reports whether Previous would return an element.
	HasPrevious() (bool, error)
	// Previous returns the previous element and moves the cursor back.
	Previous() (T, error)
	// NextIndex returns the index of the element Next would return.
	NextIndex() (int, error)
	// PreviousIndex returns the index of the element Previous would return.
	PreviousIndex() (int, error)
	// Set replaces the element last returned by Next or Previous.
	Set(T) error
	// Add inserts an element at the cursor position.
	Add(T) error
}

// IndexedUnsortedList is a list of elements kept in insertion order.
//
// Insertion indices range over [0, Len()], access indices over [0, Len()).
type IndexedUnsortedList[T any] interface {
	AddToFront(element T)
	AddToRear(element T)
	Add(element T)
	AddAt(index int, element T) error
	AddAfter(element, target T) error
	RemoveFirst() (T, error)
	RemoveLast() (T, error)
	Remove(target T) (T, error)
	RemoveAt(index int) (T, error)
	Set(index int, element T) error
	Get(index int) (T, error)
	IndexOf(element T) int
	First() (T, error)
	Last() (T, error)
	Contains(target T) bool
	IsEmpty() bool
	Len() int
	String() string
	Iterator() Iterator[T]
}
