package script

import (
	"fmt"

	"github.com/pavanmanishd/dynarray"
)

// Resize records one capacity change seen while profiling.
type Resize struct {
	Op   string // "push" or "pop"
	Size int    // size after the op
	From int    // capacity before the op
	To   int    // capacity after the op
}

func (r Resize) String() string {
	return fmt.Sprintf("%s size=%d cap %d -> %d", r.Op, r.Size, r.From, r.To)
}

// Profile pushes 0..n-1 onto a and then pops until it is empty, returning
// every capacity change in order.
func Profile(a *dynarray.DynamicArray[int], n int) ([]Resize, error) {
	var resizes []Resize
	record := func(op string, before int) {
		if after := a.Capacity(); after != before {
			resizes = append(resizes, Resize{Op: op, Size: a.Size(), From: before, To: after})
		}
	}
	for i := 0; i < n; i++ {
		before := a.Capacity()
		a.Push(i)
		record("push", before)
	}
	for !a.IsEmpty() {
		before := a.Capacity()
		if _, err := a.Pop(); err != nil {
			return resizes, err
		}
		record("pop", before)
	}
	return resizes, nil
}
