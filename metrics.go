package dynarray

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the array has been released.
func (a *DynamicArray[E]) Utilization() float64 {
	if a.buf.released() {
		return 0
	}
	return float64(a.size) / float64(a.buf.capacity())
}

// InitialCapacity returns the capacity the array starts with and never
// shrinks below.
func (a *DynamicArray[E]) InitialCapacity() int {
	return a.initialCapacity
}

// Grows returns how many times the array has doubled its capacity.
func (a *DynamicArray[E]) Grows() int {
	return a.grows
}

// Shrinks returns how many times the array has halved its capacity.
func (a *DynamicArray[E]) Shrinks() int {
	return a.shrinks
}

// Metrics returns a snapshot of array statistics.
// A released array reports zero size and capacity.
func (a *DynamicArray[E]) Metrics() ArrayMetrics {
	m := ArrayMetrics{
		InitialCapacity: a.initialCapacity,
		Grows:           a.grows,
		Shrinks:         a.shrinks,
		Utilization:     a.Utilization(),
	}
	if !a.buf.released() {
		m.Size = a.size
		m.Capacity = a.buf.capacity()
	}
	return m
}

// ArrayMetrics contains statistical information about a DynamicArray.
type ArrayMetrics struct {
	Size            int     // Live elements
	Capacity        int     // Allocated slots
	InitialCapacity int     // Starting capacity and shrink floor
	Grows           int     // Capacity doublings so far
	Shrinks         int     // Capacity halvings so far
	Utilization     float64 // Ratio of size to capacity (0.0-1.0)
}
