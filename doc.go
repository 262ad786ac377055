// Package dynarray implements a growable, shrinkable contiguous array and a
// fixed-length companion for Go.
//
// # Overview
//
// A DynamicArray owns a single buffer of slots. Live elements occupy the
// first Size() slots in order; the rest are cleared. The buffer is replaced
// wholesale when the array grows or shrinks:
//
//   - Grow: an insertion that would overflow the capacity first doubles it
//   - Shrink: a removal that would leave fewer than a quarter of the slots
//     live first halves the capacity
//   - The capacity never falls below the initial capacity (100 by default)
//
// # Basic Usage
//
//	a := dynarray.NewDynamicArray[int]()
//	defer a.Release() // Drop the buffer when done
//
//	a.Push(1)
//	a.Prepend(0)
//	if err := a.Insert(1, 5); err != nil {
//		// errors.Is(err, dynarray.ErrOutOfRange)
//	}
//
//	v, err := a.Pop()      // 1, nil
//	i := a.Find(5)         // 1
//	removed := a.Remove(7) // false, array untouched
//
// # Fixed Arrays
//
// A FixedArray is built from its initial elements. Its logical length never
// changes; Append, Insert, Pop and Remove move the fill count instead and
// report ErrFull or ErrEmpty at the ends:
//
//	f, err := dynarray.NewFixedArray[any](1, 2, 3)
//	_, err = f.Pop()        // fill count 2
//	err = f.Append("four")  // ErrTypeMismatch: the array holds ints
//	err = f.Append(4)       // fill count 3
//	err = f.Append(5)       // ErrFull
//
// # Errors
//
// Every failure is returned synchronously as an error wrapping one of
// ErrOutOfRange, ErrEmpty (alias ErrUnderflow), ErrFull, ErrTypeMismatch or
// ErrNotFound. Arguments are validated before anything changes, so a failed
// call leaves the array exactly as it was.
//
// # Thread Safety
//
// Neither type is goroutine-safe. Callers sharing an array across
// goroutines must synchronize access themselves.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized
//   - Insert, Delete: O(Size() - index)
//   - Find, Remove: O(Size())
//   - Grow, Shrink: O(Size()) copy into a new buffer
//
// # Metrics and Monitoring
//
// The array reports how full it is and how often it resized:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Grows: %d, Shrinks: %d\n", m.Grows, m.Shrinks)
//
// Pass WithLogger to log every resize at debug level.
package dynarray
