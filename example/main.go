package main

import (
	"errors"
	"fmt"

	"github.com/mgnsk/iulist"
	"github.com/mgnsk/iulist/list"
)

func main() {
	l := list.New[int]()

	l.AddToRear(1)
	l.AddToRear(2)
	l.AddToRear(3)

	// Walk the list and double every element in place.
	c := l.ListIterator()
	for {
		v, err := c.Next()
		if errors.Is(err, iulist.ErrEndOfSequence) {
			break
		} else if err != nil {
			panic(err)
		}

		if err := c.Set(v * 2); err != nil {
			panic(err)
		}
	}

	fmt.Println(l) // [2, 4, 6]

	// The cursor is invalidated by changes made through the list.
	l.AddToFront(0)

	if _, err := c.Previous(); errors.Is(err, iulist.ErrStaleCursor) {
		fmt.Println("cursor is stale:", err)
	}
}
