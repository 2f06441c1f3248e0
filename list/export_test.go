package list

// Check exposes the structural invariant check to tests.
func (l *List[T]) Check() error {
	return l.check()
}

// Revision exposes the modification counter to tests.
func (l *List[T]) Revision() uint64 {
	return l.revision
}
