package list_test

import (
	"github.com/mgnsk/iulist"
	"github.com/mgnsk/iulist/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("list operations", func() {
	var l *list.List[int]

	BeforeEach(func() {
		l = list.New[int]()
	})

	AfterEach(func() {
		Expect(l.Check()).To(Succeed())
	})

	When("elements are added to the rear", func() {
		BeforeEach(func() {
			l.AddToRear(1)
			l.AddToRear(2)
			l.AddToRear(3)
		})

		Specify("they render in insertion order", func() {
			Expect(l.String()).To(Equal("[1, 2, 3]"))
		})

		Specify("removing the first returns the head", func() {
			Expect(l.RemoveFirst()).To(Equal(1))
			Expect(l.String()).To(Equal("[2, 3]"))
		})

		Specify("adding after an element inserts behind it", func() {
			Expect(l.AddAfter(5, 2)).To(Succeed())
			Expect(l.String()).To(Equal("[1, 2, 5, 3]"))

			Expect(l.AddAfter(9, 99)).To(MatchError(iulist.ErrNotFound))
			Expect(l.String()).To(Equal("[1, 2, 5, 3]"))
		})

		Specify("removing by index returns the element", func() {
			Expect(l.RemoveAt(1)).To(Equal(2))
			Expect(l.String()).To(Equal("[1, 3]"))

			_, err := l.RemoveAt(5)
			Expect(err).To(MatchError(iulist.ErrOutOfBounds))
			Expect(l.String()).To(Equal("[1, 3]"))
		})
	})

	DescribeTable("out of bounds access",
		func(index int) {
			l.Add(1)
			l.Add(2)

			_, err := l.Get(index)
			Expect(err).To(MatchError(iulist.ErrOutOfBounds))
			Expect(l.Set(index, 0)).To(MatchError(iulist.ErrOutOfBounds))
			_, err = l.RemoveAt(index)
			Expect(err).To(MatchError(iulist.ErrOutOfBounds))
		},
		Entry("negative", -1),
		Entry("size", 2),
		Entry("past size", 3),
	)
})

var _ = Describe("cursor", func() {
	var l *list.List[int]

	BeforeEach(func() {
		l = list.New[int]()
		l.Add(1)
		l.Add(2)
		l.Add(3)
	})

	AfterEach(func() {
		Expect(l.Check()).To(Succeed())
	})

	When("removing after next", func() {
		Specify("the cursor stays before the following element", func() {
			c, err := l.ListIteratorAt(1)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Next()).To(Equal(2))
			Expect(c.Remove()).To(Succeed())
			Expect(l.String()).To(Equal("[1, 3]"))
			Expect(c.Previous()).To(Equal(1))
		})
	})

	When("adding at the front", func() {
		Specify("the cursor lands after the new element and cannot remove it", func() {
			c := l.ListIterator()

			Expect(c.Add(0)).To(Succeed())
			Expect(l.String()).To(Equal("[0, 1, 2, 3]"))
			Expect(c.PreviousIndex()).To(Equal(0))
			Expect(c.NextIndex()).To(Equal(1))
			Expect(c.Remove()).To(MatchError(iulist.ErrIllegalState))
		})
	})

	When("the list is modified directly", func() {
		Specify("every cursor operation reports staleness", func() {
			c := l.ListIterator()
			l.AddToFront(0)

			_, err := c.HasNext()
			Expect(err).To(MatchError(iulist.ErrStaleCursor))
			_, err = c.Next()
			Expect(err).To(MatchError(iulist.ErrStaleCursor))
			Expect(c.Add(5)).To(MatchError(iulist.ErrStaleCursor))
			Expect(l.String()).To(Equal("[0, 1, 2, 3]"))
		})
	})

	When("positioned past the tail without a prior move", func() {
		Specify("previous returns the last element", func() {
			c, err := l.ListIteratorAt(l.Len())
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Previous()).To(Equal(3))
			Expect(c.Remove()).To(Succeed())
			Expect(l.String()).To(Equal("[1, 2]"))
			Expect(l.Last()).To(Equal(2))
		})
	})

	DescribeTable("set and remove require a preceding move",
		func(prepare func(c *list.Cursor[int])) {
			c := l.ListIterator()
			prepare(c)

			Expect(c.Set(9)).To(MatchError(iulist.ErrIllegalState))
			Expect(c.Remove()).To(MatchError(iulist.ErrIllegalState))
		},
		Entry("fresh cursor", func(*list.Cursor[int]) {}),
		Entry("after add", func(c *list.Cursor[int]) {
			Expect(c.Add(7)).To(Succeed())
		}),
		Entry("after remove", func(c *list.Cursor[int]) {
			Expect(c.Next()).To(Equal(1))
			Expect(c.Remove()).To(Succeed())
		}),
	)
})
