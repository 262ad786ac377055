package dynarray

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

// FixedArray is an array with a fixed logical length and a fill count that
// insertions and removals move. Every operation mutates the array in place.
//
// All elements share one runtime type, inferred from the first non-nil
// constructor argument. For a concrete E this always holds; for interface
// element types such as any it is checked at construction and on every
// insertion.
type FixedArray[E comparable] struct {
	buf      *buffer[E]
	elemType reflect.Type // nil until a non-nil element is seen
	length   int
	fill     int
}

// NewFixedArray creates a FixedArray holding elems. Both the logical length
// and the fill count start at len(elems). It returns ErrTypeMismatch if the
// non-nil elements span more than one type.
func NewFixedArray[E comparable](elems ...E) (*FixedArray[E], error) {
	f := &FixedArray[E]{
		buf:    newBuffer[E](len(elems)),
		length: len(elems),
		fill:   len(elems),
	}
	for i, e := range elems {
		t := typeOf(e)
		switch {
		case t == nil:
		case f.elemType == nil:
			f.elemType = t
		case t != f.elemType:
			return nil, fmt.Errorf("%w: element %d is %v, array holds %v", ErrTypeMismatch, i, t, f.elemType)
		}
		f.buf.set(i, e)
	}
	return f, nil
}

// typeOf returns the dynamic type of e, or nil for a nil interface value.
func typeOf[E any](e E) reflect.Type {
	return reflect.TypeOf(any(e))
}

// Len returns the logical length, which never changes.
func (f *FixedArray[E]) Len() int {
	return f.length
}

// Count returns the number of live elements.
func (f *FixedArray[E]) Count() int {
	return f.fill
}

// ElementType returns the element type, or nil if no non-nil element has
// been stored yet.
func (f *FixedArray[E]) ElementType() reflect.Type {
	return f.elemType
}

// At returns the element at index. Live indices are [0, Count()).
func (f *FixedArray[E]) At(index int) (E, error) {
	if index < 0 || index >= f.fill {
		var zero E
		return zero, f.outOfRange(index)
	}
	return f.buf.get(index), nil
}

// Set overwrites the live element at index.
func (f *FixedArray[E]) Set(index int, element E) error {
	if err := f.checkType(element); err != nil {
		return err
	}
	if index < 0 || index >= f.fill {
		return f.outOfRange(index)
	}
	f.adopt(element)
	f.buf.set(index, element)
	return nil
}

// Append writes element after the last live one.
func (f *FixedArray[E]) Append(element E) error {
	if err := f.checkInsert(element); err != nil {
		return err
	}
	f.adopt(element)
	f.buf.set(f.fill, element)
	f.fill++
	return nil
}

// Insert writes element at position, shifting [position, Count()) one slot
// right. A position naming the last live slot appends instead.
func (f *FixedArray[E]) Insert(position int, element E) error {
	if err := f.checkInsert(element); err != nil {
		return err
	}
	if position < 0 || position > f.fill {
		return f.outOfRange(position)
	}
	if position == f.fill-1 {
		return f.Append(element)
	}
	f.adopt(element)
	f.buf.shiftRight(position, f.fill)
	f.buf.set(position, element)
	f.fill++
	return nil
}

// Pop clears the last live slot and returns what it held.
func (f *FixedArray[E]) Pop() (E, error) {
	var zero E
	if f.fill == 0 {
		return zero, fmt.Errorf("%w: length is %d", ErrEmpty, f.length)
	}
	f.fill--
	e := f.buf.get(f.fill)
	f.buf.clearSlot(f.fill)
	return e, nil
}

// Remove deletes the element at position, shifting the live elements after
// it one slot left. Positions at or past the last live slot, including the
// last logical slot, pop instead.
func (f *FixedArray[E]) Remove(position int) (E, error) {
	var zero E
	if f.fill == 0 {
		return zero, fmt.Errorf("%w: length is %d", ErrEmpty, f.length)
	}
	if position < 0 || position >= f.length {
		return zero, f.outOfRange(position)
	}
	if position >= f.fill-1 {
		return f.Pop()
	}
	e := f.buf.get(position)
	f.buf.shiftLeft(position, f.fill)
	f.fill--
	return e, nil
}

// IndexOf returns the first stored value equal to element.
func (f *FixedArray[E]) IndexOf(element E) (E, error) {
	i := f.Find(element)
	if i == -1 {
		var zero E
		return zero, fmt.Errorf("%w: %v", ErrNotFound, element)
	}
	return f.buf.get(i), nil
}

// Find returns the lowest live index holding element, or -1.
func (f *FixedArray[E]) Find(element E) int {
	return slices.Index(f.buf.live(f.fill), element)
}

// ToSlice returns a copy of the live elements.
func (f *FixedArray[E]) ToSlice() []E {
	return slices.Clone(f.buf.live(f.fill))
}

// Equal reports whether the live elements are exactly other, in order.
func (f *FixedArray[E]) Equal(other []E) bool {
	return slices.Equal(f.buf.live(f.fill), other)
}

// checkInsert validates element for an insertion and checks for room.
func (f *FixedArray[E]) checkInsert(element E) error {
	if err := f.checkType(element); err != nil {
		return err
	}
	if f.fill >= f.length {
		return fmt.Errorf("%w: length is %d", ErrFull, f.length)
	}
	return nil
}

// adopt records the type of a validated element when none is set yet.
func (f *FixedArray[E]) adopt(element E) {
	if f.elemType == nil {
		f.elemType = typeOf(element)
	}
}

// checkType rejects nil elements and elements of another type.
func (f *FixedArray[E]) checkType(element E) error {
	t := typeOf(element)
	if t == nil {
		return fmt.Errorf("%w: nil element", ErrTypeMismatch)
	}
	if f.elemType != nil && t != f.elemType {
		return fmt.Errorf("%w: %v is not %v", ErrTypeMismatch, t, f.elemType)
	}
	return nil
}

func (f *FixedArray[E]) outOfRange(position int) error {
	return fmt.Errorf("%w: count is %d, length is %d, but requested position is %d", ErrOutOfRange, f.fill, f.length, position)
}
