package slist

func (l *List[T]) Check() error {
	return l.check()
}
