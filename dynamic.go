package dynarray

import (
	"fmt"
	"iter"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

const (
	// InitialCapacity is the slot count of a new DynamicArray.
	InitialCapacity = 100

	// ResizeFactor is the factor capacity grows and shrinks by.
	ResizeFactor = 2

	// ShrinkThreshold is the fraction of capacity below which a removal
	// shrinks the array.
	ShrinkThreshold = 0.25
)

// DynamicArray is a contiguous sequence that grows when an insertion would
// overflow its capacity and shrinks when a removal would leave it less than
// a quarter full. Not goroutine-safe.
//
// The zero value is not usable; create arrays with NewDynamicArray.
type DynamicArray[E comparable] struct {
	buf             *buffer[E]
	size            int
	initialCapacity int
	logger          *log.Logger

	grows   int
	shrinks int
}

// NewDynamicArray creates an empty DynamicArray with InitialCapacity slots
// unless WithInitialCapacity says otherwise.
func NewDynamicArray[E comparable](opts ...Option) *DynamicArray[E] {
	c := newConfig(opts)
	return &DynamicArray[E]{
		buf:             newBuffer[E](c.initialCapacity),
		initialCapacity: c.initialCapacity,
		logger:          c.logger,
	}
}

// Size returns the number of live elements.
func (a *DynamicArray[E]) Size() int {
	a.buf.panicIfReleased()
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *DynamicArray[E]) Capacity() int {
	return a.buf.capacity()
}

// IsEmpty reports whether the array holds no elements.
func (a *DynamicArray[E]) IsEmpty() bool {
	return a.Size() == 0
}

// At returns the element at index. Live indices are [0, Size()).
func (a *DynamicArray[E]) At(index int) (E, error) {
	if err := a.checkIndex(index, a.size); err != nil {
		var zero E
		return zero, err
	}
	return a.buf.get(index), nil
}

// Push appends item at the end, growing the array first if it is full.
func (a *DynamicArray[E]) Push(item E) {
	a.growIfFull()
	a.buf.set(a.size, item)
	a.size++
}

// Insert writes item at index, shifting the elements at [index, Size())
// one slot right. index may equal Size(), which appends.
func (a *DynamicArray[E]) Insert(index int, item E) error {
	if err := a.checkIndex(index, a.size+1); err != nil {
		return err
	}
	a.growIfFull()
	a.buf.shiftRight(index, a.size)
	a.buf.set(index, item)
	a.size++
	return nil
}

// Prepend inserts item at index 0.
func (a *DynamicArray[E]) Prepend(item E) {
	// Index 0 is always in range.
	_ = a.Insert(0, item)
}

// Pop removes and returns the last element. It returns ErrUnderflow on an
// empty array.
func (a *DynamicArray[E]) Pop() (E, error) {
	var zero E
	if a.Size() == 0 {
		return zero, fmt.Errorf("%w: pop on empty array", ErrUnderflow)
	}
	a.shrinkIfSparse()
	a.size--
	item := a.buf.get(a.size)
	a.buf.clearSlot(a.size)
	return item, nil
}

// Delete removes the element at index, shifting the elements after it one
// slot left.
func (a *DynamicArray[E]) Delete(index int) error {
	if err := a.checkIndex(index, a.size); err != nil {
		return err
	}
	a.shrinkIfSparse()
	a.buf.shiftLeft(index, a.size)
	a.size--
	return nil
}

// Find returns the lowest index holding a value equal to item, or -1.
func (a *DynamicArray[E]) Find(item E) int {
	return slices.Index(a.buf.live(a.size), item)
}

// Remove deletes the first element equal to item and reports whether one
// was found. An absent item leaves the array untouched, capacity included.
func (a *DynamicArray[E]) Remove(item E) bool {
	index := a.Find(item)
	if index == -1 {
		return false
	}
	// index comes from Find, so it is live.
	_ = a.Delete(index)
	return true
}

// All returns an iterator over index/element pairs in order.
// Mutating the array while iterating is not supported.
func (a *DynamicArray[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < a.Size(); i++ {
			if !yield(i, a.buf.get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (a *DynamicArray[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range a.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the live elements. The result never aliases
// the array's storage.
func (a *DynamicArray[E]) ToSlice() []E {
	return slices.Clone(a.buf.live(a.size))
}

// Equal reports whether the array holds exactly the values of other, in order.
func (a *DynamicArray[E]) Equal(other []E) bool {
	return slices.Equal(a.buf.live(a.size), other)
}

// Clear drops every element and reallocates the initial capacity.
// Grow and shrink counters are kept.
func (a *DynamicArray[E]) Clear() {
	a.buf.panicIfReleased()
	a.buf.release()
	a.buf = newBuffer[E](a.initialCapacity)
	a.size = 0
}

// Release drops the backing storage and makes the array unusable.
// Any subsequent operations will panic. Calling Release again is a no-op.
func (a *DynamicArray[E]) Release() {
	a.buf.release()
	a.size = 0
}

// checkIndex validates 0 <= index < limit.
func (a *DynamicArray[E]) checkIndex(index, limit int) error {
	a.buf.panicIfReleased()
	if index < 0 || index >= limit {
		return fmt.Errorf("%w: size is %d, but requested index is %d", ErrOutOfRange, a.size, index)
	}
	return nil
}

// growIfFull doubles the capacity when one more element would not fit.
func (a *DynamicArray[E]) growIfFull() {
	capacity := a.buf.capacity()
	if a.size+1 <= capacity {
		return
	}
	a.resize(capacity * ResizeFactor)
	a.grows++
}

// shrinkIfSparse halves the capacity when removing one element would leave
// fewer than ShrinkThreshold of the slots live. Capacity never drops below
// the initial capacity.
func (a *DynamicArray[E]) shrinkIfSparse() {
	capacity := a.buf.capacity()
	if float64(a.size-1) >= float64(capacity)*ShrinkThreshold {
		return
	}
	next := capacity / ResizeFactor
	if next < a.initialCapacity {
		return
	}
	a.resize(next)
	a.shrinks++
}

func (a *DynamicArray[E]) resize(capacity int) {
	if a.logger != nil {
		a.logger.Debug("resize", "from", a.buf.capacity(), "to", capacity, "size", a.size)
	}
	a.buf.resize(capacity, a.size)
}
