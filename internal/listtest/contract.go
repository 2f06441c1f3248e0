/*
Package listtest runs the iulist.IndexedUnsortedList contract against an implementation.
*/
package listtest

import (
	"math/rand"
	"testing"

	"github.com/mgnsk/iulist"
	. "github.com/onsi/gomega"
)

// List is the list type under test.
type List = iulist.IndexedUnsortedList[int]

// Factory creates an empty list.
type Factory func() List

// Checker verifies the structural invariants of a list.
type Checker func(List) error

// Elements drains a fresh iterator of l.
func Elements(t testing.TB, l List) []int {
	g := NewWithT(t)

	elems := []int{}
	it := l.Iterator()

	for {
		ok, err := it.HasNext()
		g.Expect(err).NotTo(HaveOccurred())
		if !ok {
			break
		}

		v, err := it.Next()
		g.Expect(err).NotTo(HaveOccurred())
		elems = append(elems, v)
	}

	return elems
}

// ExpectElements asserts that l holds exactly elements in order and is well formed.
func ExpectElements(t testing.TB, l List, check Checker, elements ...int) {
	t.Helper()

	g := NewWithT(t)

	if check != nil {
		g.Expect(check(l)).To(Succeed())
	}

	if elements == nil {
		elements = []int{}
	}

	g.Expect(l.Len()).To(Equal(len(elements)))
	g.Expect(l.IsEmpty()).To(Equal(len(elements) == 0))
	g.Expect(Elements(t, l)).To(Equal(elements))
}

// RunContract runs the contract subtests. check may be nil.
func RunContract(t *testing.T, newList Factory, check Checker) {
	from := func(values ...int) List {
		l := newList()
		for _, v := range values {
			l.AddToRear(v)
		}
		return l
	}

	t.Run("empty list", func(t *testing.T) {
		g := NewWithT(t)
		l := newList()

		ExpectElements(t, l, check)
		g.Expect(l.String()).To(Equal("[]"))
		g.Expect(l.IndexOf(1)).To(Equal(-1))
		g.Expect(l.Contains(1)).To(BeFalse())

		_, err := l.First()
		g.Expect(err).To(MatchError(iulist.ErrEmpty))
		_, err = l.Last()
		g.Expect(err).To(MatchError(iulist.ErrEmpty))
		_, err = l.RemoveFirst()
		g.Expect(err).To(MatchError(iulist.ErrEmpty))
		_, err = l.RemoveLast()
		g.Expect(err).To(MatchError(iulist.ErrEmpty))
		_, err = l.Get(0)
		g.Expect(err).To(MatchError(iulist.ErrOutOfBounds))
		_, err = l.RemoveAt(0)
		g.Expect(err).To(MatchError(iulist.ErrOutOfBounds))
		_, err = l.Remove(1)
		g.Expect(err).To(MatchError(iulist.ErrNotFound))
		g.Expect(l.AddAfter(1, 2)).To(MatchError(iulist.ErrNotFound))
		g.Expect(l.Set(0, 1)).To(MatchError(iulist.ErrOutOfBounds))

		ExpectElements(t, l, check)
	})

	t.Run("add to rear and remove first", func(t *testing.T) {
		g := NewWithT(t)
		l := newList()

		l.AddToRear(1)
		l.AddToRear(2)
		l.AddToRear(3)
		g.Expect(l.String()).To(Equal("[1, 2, 3]"))

		v, err := l.RemoveFirst()
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(1))
		g.Expect(l.String()).To(Equal("[2, 3]"))
		ExpectElements(t, l, check, 2, 3)
	})

	t.Run("add to front", func(t *testing.T) {
		l := newList()

		l.AddToFront(1)
		l.AddToFront(2)
		l.Add(3)

		ExpectElements(t, l, check, 2, 1, 3)
	})

	t.Run("first and last", func(t *testing.T) {
		g := NewWithT(t)
		l := from(4, 5, 6)

		v, err := l.First()
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(4))

		v, err = l.Last()
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(6))

		ExpectElements(t, l, check, 4, 5, 6)
	})

	t.Run("add after", func(t *testing.T) {
		g := NewWithT(t)
		l := from(1, 2, 3)

		g.Expect(l.AddAfter(5, 2)).To(Succeed())
		ExpectElements(t, l, check, 1, 2, 5, 3)

		g.Expect(l.AddAfter(9, 99)).To(MatchError(iulist.ErrNotFound))
		ExpectElements(t, l, check, 1, 2, 5, 3)

		g.Expect(l.AddAfter(7, 3)).To(Succeed())
		ExpectElements(t, l, check, 1, 2, 5, 3, 7)

		v, err := l.Last()
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(7))
	})

	t.Run("add after first match only", func(t *testing.T) {
		g := NewWithT(t)
		l := from(1, 2, 1)

		g.Expect(l.AddAfter(0, 1)).To(Succeed())
		ExpectElements(t, l, check, 1, 0, 2, 1)
	})

	t.Run("add at", func(t *testing.T) {
		g := NewWithT(t)
		l := newList()

		g.Expect(l.AddAt(0, 2)).To(Succeed())
		g.Expect(l.AddAt(0, 0)).To(Succeed())
		g.Expect(l.AddAt(1, 1)).To(Succeed())
		g.Expect(l.AddAt(3, 3)).To(Succeed())
		ExpectElements(t, l, check, 0, 1, 2, 3)

		g.Expect(l.AddAt(-1, 9)).To(MatchError(iulist.ErrOutOfBounds))
		g.Expect(l.AddAt(5, 9)).To(MatchError(iulist.ErrOutOfBounds))
		ExpectElements(t, l, check, 0, 1, 2, 3)
	})

	t.Run("add at then get round trip", func(t *testing.T) {
		for i := 0; i <= 5; i++ {
			g := NewWithT(t)
			l := from(0, 1, 2, 3, 4)

			g.Expect(l.AddAt(i, 100)).To(Succeed())
			g.Expect(l.Get(i)).To(Equal(100))
			g.Expect(l.Len()).To(Equal(6))
			if check != nil {
				g.Expect(check(l)).To(Succeed())
			}
		}
	})

	t.Run("get is idempotent", func(t *testing.T) {
		g := NewWithT(t)
		l := from(1, 2, 3)
		it := l.Iterator()

		for i := range 3 {
			a, err := l.Get(i)
			g.Expect(err).NotTo(HaveOccurred())
			b, err := l.Get(i)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(a).To(Equal(b))
			g.Expect(a).To(Equal(i + 1))
		}

		g.Expect(l.Len()).To(Equal(3))

		_, err := it.HasNext()
		g.Expect(err).NotTo(HaveOccurred())

		_, err = l.Get(3)
		g.Expect(err).To(MatchError(iulist.ErrOutOfBounds))
		_, err = l.Get(-1)
		g.Expect(err).To(MatchError(iulist.ErrOutOfBounds))
	})

	t.Run("set", func(t *testing.T) {
		g := NewWithT(t)
		l := from(1, 2, 3)

		g.Expect(l.Set(0, 10)).To(Succeed())
		g.Expect(l.Set(2, 30)).To(Succeed())
		ExpectElements(t, l, check, 10, 2, 30)

		g.Expect(l.Set(3, 40)).To(MatchError(iulist.ErrOutOfBounds))
		g.Expect(l.Set(-1, 40)).To(MatchError(iulist.ErrOutOfBounds))
		ExpectElements(t, l, check, 10, 2, 30)
	})

	t.Run("remove at", func(t *testing.T) {
		g := NewWithT(t)
		l := from(1, 2, 3)

		v, err := l.RemoveAt(1)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(2))
		ExpectElements(t, l, check, 1, 3)

		_, err = l.RemoveAt(5)
		g.Expect(err).To(MatchError(iulist.ErrOutOfBounds))
		_, err = l.RemoveAt(2)
		g.Expect(err).To(MatchError(iulist.ErrOutOfBounds))
		ExpectElements(t, l, check, 1, 3)

		v, err = l.RemoveAt(1)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(3))
		ExpectElements(t, l, check, 1)

		v, err = l.RemoveAt(0)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(1))
		ExpectElements(t, l, check)
	})

	t.Run("remove target", func(t *testing.T) {
		g := NewWithT(t)
		l := from(1, 2, 3, 2)

		v, err := l.Remove(2)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(Equal(2))
		ExpectElements(t, l, check, 1, 3, 2)

		_, err = l.Remove(4)
		g.Expect(err).To(MatchError(iulist.ErrNotFound))

		_, err = l.Remove(2)
		g.Expect(err).NotTo(HaveOccurred())
		ExpectElements(t, l, check, 1, 3)

		l.Add(4)
		ExpectElements(t, l, check, 1, 3, 4)
	})

	t.Run("remove last until empty", func(t *testing.T) {
		g := NewWithT(t)
		l := from(1, 2, 3)

		for _, want := range []int{3, 2, 1} {
			v, err := l.RemoveLast()
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(v).To(Equal(want))
			if check != nil {
				g.Expect(check(l)).To(Succeed())
			}
		}

		ExpectElements(t, l, check)

		l.AddToRear(7)
		l.AddToFront(6)
		ExpectElements(t, l, check, 6, 7)
	})

	t.Run("index of and contains", func(t *testing.T) {
		g := NewWithT(t)
		l := from(5, 6, 7, 6)

		g.Expect(l.IndexOf(5)).To(Equal(0))
		g.Expect(l.IndexOf(6)).To(Equal(1))
		g.Expect(l.IndexOf(7)).To(Equal(2))
		g.Expect(l.IndexOf(8)).To(Equal(-1))
		g.Expect(l.Contains(7)).To(BeTrue())
		g.Expect(l.Contains(8)).To(BeFalse())
	})

	t.Run("iterator", func(t *testing.T) {
		t.Run("remove before next", func(t *testing.T) {
			g := NewWithT(t)
			l := from(1, 2, 3)

			g.Expect(l.Iterator().Remove()).To(MatchError(iulist.ErrIllegalState))
			ExpectElements(t, l, check, 1, 2, 3)
		})

		t.Run("remove twice", func(t *testing.T) {
			g := NewWithT(t)
			l := from(1, 2, 3)
			it := l.Iterator()

			g.Expect(it.Next()).To(Equal(1))
			g.Expect(it.Remove()).To(Succeed())
			g.Expect(it.Remove()).To(MatchError(iulist.ErrIllegalState))
			ExpectElements(t, l, check, 2, 3)
		})

		t.Run("remove every other element", func(t *testing.T) {
			g := NewWithT(t)
			l := from(0, 1, 2, 3, 4, 5, 6)
			it := l.Iterator()

			for {
				ok, err := it.HasNext()
				g.Expect(err).NotTo(HaveOccurred())
				if !ok {
					break
				}

				v, err := it.Next()
				g.Expect(err).NotTo(HaveOccurred())
				if v%2 == 0 {
					g.Expect(it.Remove()).To(Succeed())
				}
			}

			ExpectElements(t, l, check, 1, 3, 5)
			g.Expect(l.Last()).To(Equal(5))
		})

		t.Run("remove all", func(t *testing.T) {
			g := NewWithT(t)
			l := from(1, 2, 3)
			it := l.Iterator()

			for range 3 {
				_, err := it.Next()
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(it.Remove()).To(Succeed())
			}

			ExpectElements(t, l, check)
			l.Add(4)
			ExpectElements(t, l, check, 4)
		})

		t.Run("end of sequence", func(t *testing.T) {
			g := NewWithT(t)
			l := from(1)
			it := l.Iterator()

			g.Expect(it.Next()).To(Equal(1))
			_, err := it.Next()
			g.Expect(err).To(MatchError(iulist.ErrEndOfSequence))
		})

		t.Run("stale after list modification", func(t *testing.T) {
			g := NewWithT(t)
			l := from(1, 2, 3)
			it := l.Iterator()

			g.Expect(it.Next()).To(Equal(1))
			l.Add(4)

			_, err := it.HasNext()
			g.Expect(err).To(MatchError(iulist.ErrStaleCursor))
			_, err = it.Next()
			g.Expect(err).To(MatchError(iulist.ErrStaleCursor))
			g.Expect(it.Remove()).To(MatchError(iulist.ErrStaleCursor))
			ExpectElements(t, l, check, 1, 2, 3, 4)
		})

		t.Run("stale after set", func(t *testing.T) {
			g := NewWithT(t)
			l := from(1, 2, 3)
			it := l.Iterator()

			g.Expect(l.Set(1, 20)).To(Succeed())

			_, err := it.Next()
			g.Expect(err).To(MatchError(iulist.ErrStaleCursor))
		})

		t.Run("stale after other iterator removes", func(t *testing.T) {
			g := NewWithT(t)
			l := from(1, 2, 3)
			a := l.Iterator()
			b := l.Iterator()

			g.Expect(a.Next()).To(Equal(1))
			g.Expect(b.Next()).To(Equal(1))
			g.Expect(a.Remove()).To(Succeed())

			g.Expect(a.Next()).To(Equal(2))
			_, err := b.Next()
			g.Expect(err).To(MatchError(iulist.ErrStaleCursor))
		})
	})

	t.Run("matches slice model", func(t *testing.T) {
		g := NewWithT(t)
		rng := rand.New(rand.NewSource(1))
		l := newList()
		var model []int
		added, removed := 0, 0

		for i := range 2000 {
			switch op := rng.Intn(6); {
			case op == 0:
				l.AddToFront(i)
				model = append([]int{i}, model...)
				added++

			case op == 1:
				l.AddToRear(i)
				model = append(model, i)
				added++

			case op == 2:
				idx := rng.Intn(len(model) + 1)
				g.Expect(l.AddAt(idx, i)).To(Succeed())
				model = append(model[:idx], append([]int{i}, model[idx:]...)...)
				added++

			case op == 3 && len(model) > 0:
				idx := rng.Intn(len(model))
				v, err := l.RemoveAt(idx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(v).To(Equal(model[idx]))
				model = append(model[:idx], model[idx+1:]...)
				removed++

			case op == 4 && len(model) > 0:
				v, err := l.RemoveLast()
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(v).To(Equal(model[len(model)-1]))
				model = model[:len(model)-1]
				removed++

			case op == 5 && len(model) > 0:
				v, err := l.RemoveFirst()
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(v).To(Equal(model[0]))
				model = model[1:]
				removed++
			}

			g.Expect(l.Len()).To(Equal(added - removed))
			if check != nil {
				g.Expect(check(l)).To(Succeed())
			}
		}

		ExpectElements(t, l, check, model...)
	})
}
