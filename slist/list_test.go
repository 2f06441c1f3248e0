package slist_test

import (
	"slices"
	"testing"

	"github.com/mgnsk/iulist"
	"github.com/mgnsk/iulist/internal/listtest"
	"github.com/mgnsk/iulist/slist"
	. "github.com/onsi/gomega"
)

func checkList(l listtest.List) error {
	return l.(*slist.List[int]).Check()
}

func TestContract(t *testing.T) {
	listtest.RunContract(t, func() listtest.List {
		return slist.New[int]()
	}, checkList)
}

func TestZeroValueContract(t *testing.T) {
	listtest.RunContract(t, func() listtest.List {
		return &slist.List[int]{}
	}, checkList)
}

func TestNoListIterator(t *testing.T) {
	g := NewWithT(t)

	var l slist.List[int]
	l.Add(1)

	_, ok := l.Iterator().(iulist.ListIterator[int])
	g.Expect(ok).To(BeFalse())
}

func TestIteratorRemoveTail(t *testing.T) {
	g := NewWithT(t)

	var l slist.List[int]
	l.Add(1)
	l.Add(2)
	l.Add(3)

	it := l.Iterator()
	for range 3 {
		_, err := it.Next()
		g.Expect(err).NotTo(HaveOccurred())
	}

	g.Expect(it.Remove()).To(Succeed())
	g.Expect(l.Check()).To(Succeed())
	g.Expect(l.Last()).To(Equal(2))

	l.Add(4)
	g.Expect(l.Check()).To(Succeed())
	g.Expect(slices.Collect(l.Values())).To(Equal([]int{1, 2, 4}))
}

func TestIteratorRemoveMiddleThenContinue(t *testing.T) {
	g := NewWithT(t)

	var l slist.List[string]
	for _, v := range []string{"a", "b", "c", "d"} {
		l.Add(v)
	}

	it := l.Iterator()
	g.Expect(it.Next()).To(Equal("a"))
	g.Expect(it.Next()).To(Equal("b"))
	g.Expect(it.Remove()).To(Succeed())
	g.Expect(it.Next()).To(Equal("c"))
	g.Expect(it.Remove()).To(Succeed())
	g.Expect(it.Next()).To(Equal("d"))

	g.Expect(l.Check()).To(Succeed())
	g.Expect(l.String()).To(Equal("[a, d]"))
}

func TestCustomEquality(t *testing.T) {
	g := NewWithT(t)

	l := slist.New(iulist.WithEqual(func(a, b int) bool {
		return a%10 == b%10
	}))
	l.Add(11)
	l.Add(22)

	g.Expect(l.IndexOf(2)).To(Equal(1))
	g.Expect(l.Remove(1)).To(Equal(11))
	g.Expect(l.String()).To(Equal("[22]"))
}
