package dynarray

// buffer is the exclusively owned slot storage behind both array types.
// It never hands out its backing slice; callers copy elements in and out.
type buffer[E any] struct {
	slots []E  // backing memory, len(slots) is the capacity
	freed bool // set by release
}

// newBuffer allocates a buffer of exactly n zeroed slots.
func newBuffer[E any](n int) *buffer[E] {
	return &buffer[E]{slots: make([]E, max(n, 0))}
}

// capacity returns the number of allocated slots.
func (b *buffer[E]) capacity() int {
	b.panicIfReleased()
	return len(b.slots)
}

// get returns a copy of the element in slot i.
func (b *buffer[E]) get(i int) E {
	b.panicIfReleased()
	return b.slots[i]
}

// set writes e into slot i.
func (b *buffer[E]) set(i int, e E) {
	b.panicIfReleased()
	b.slots[i] = e
}

// resize moves the first live slots into a fresh allocation of n slots
// and drops the old one. The old slots are cleared before they are dropped
// so nothing keeps their elements reachable.
func (b *buffer[E]) resize(n, live int) {
	b.panicIfReleased()
	next := make([]E, n)
	copy(next, b.slots[:live])
	clear(b.slots)
	b.slots = next
}

// shiftRight moves slots [from, to) one slot right into [from+1, to+1).
// Slot to must exist.
func (b *buffer[E]) shiftRight(from, to int) {
	b.panicIfReleased()
	copy(b.slots[from+1:to+1], b.slots[from:to])
}

// shiftLeft moves slots (from, to) one slot left into [from, to-1) and
// clears slot to-1.
func (b *buffer[E]) shiftLeft(from, to int) {
	b.panicIfReleased()
	copy(b.slots[from:to-1], b.slots[from+1:to])
	b.clearSlot(to - 1)
}

// clearSlot zeroes slot i.
func (b *buffer[E]) clearSlot(i int) {
	var zero E
	b.slots[i] = zero
}

// live returns the slots [0, n) as a read-only view for internal scans.
func (b *buffer[E]) live(n int) []E {
	b.panicIfReleased()
	return b.slots[:n]
}

// release drops the backing memory and makes the buffer unusable.
// Any subsequent operations will panic.
func (b *buffer[E]) release() {
	clear(b.slots)
	b.slots = nil
	b.freed = true
}

// released reports whether release has been called.
func (b *buffer[E]) released() bool {
	return b.freed
}

// panicIfReleased panics if the buffer has been released.
func (b *buffer[E]) panicIfReleased() {
	if b.freed {
		panic("dynarray: use after Release()")
	}
}
