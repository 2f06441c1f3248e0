package list

// node is a cell of the chain. The list owns it through head and the next links,
// prev and tail are back-references.
type node[T any] struct {
	element    T
	prev, next *node[T]
}
