package list_test

import (
	"container/list"
	"testing"

	iulist "github.com/mgnsk/iulist/list"
)

func BenchmarkInsertDelete(b *testing.B) {
	b.Run("iulist list", func(b *testing.B) {
		var l iulist.List[string]

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.AddToRear("a")
			_, _ = l.RemoveFirst()
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := list.New()

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack("a")
			l.Remove(l.Front())
		}
	})
}

func BenchmarkCursorWalk(b *testing.B) {
	b.Run("iulist list", func(b *testing.B) {
		var l iulist.List[int]
		for i := range 1000 {
			l.Add(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			c := l.ListIterator()
			for {
				if _, err := c.Next(); err != nil {
					break
				}
			}
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := list.New()
		for i := range 1000 {
			l.PushBack(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			for e := l.Front(); e != nil; e = e.Next() {
			}
		}
	})
}

func BenchmarkGetMiddle(b *testing.B) {
	var l iulist.List[int]
	for i := range 1000 {
		l.Add(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = l.Get(750)
	}
}
