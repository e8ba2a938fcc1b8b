// Package arena provides a growable binder arena: a single backing slice
// that a Visitor can hand out index ranges into as term and theorem records
// reserve space for their binders. It mirrors internal/pool's bucketed
// size-class growth strategy, simplified to one slice per arena since
// binders are read once and never individually released.
package arena

// Arena is a generic growable slice with an optional capacity ceiling. Zero
// value is an empty arena with no ceiling.
type Arena[B any] struct {
	data []B
	max  int // 0 means unbounded
}

// New creates an arena with no capacity ceiling.
func New[B any]() *Arena[B] {
	return &Arena[B]{}
}

// NewLimited creates an arena that refuses reservations once its length
// would exceed max.
func NewLimited[B any](max int) *Arena[B] {
	return &Arena[B]{max: max}
}

// Reserve grows the arena by n elements and returns a writable view onto the
// new elements plus their starting index. ok is false if growing by n would
// exceed the arena's capacity ceiling.
func (a *Arena[B]) Reserve(n int) (slice []B, start int, ok bool) {
	if n < 0 {
		return nil, 0, false
	}
	start = len(a.data)
	if a.max != 0 && start+n > a.max {
		return nil, 0, false
	}
	a.data = append(a.data, make([]B, n)...)
	return a.data[start : start+n], start, true
}

// At returns the element at index i. It panics if i is out of range, same
// as a direct slice index.
func (a *Arena[B]) At(i int) B { return a.data[i] }

// Slice returns the elements in [start, end). It panics if the range is
// out of bounds, same as a direct slice expression.
func (a *Arena[B]) Slice(start, end int) []B { return a.data[start:end] }

// Len returns the number of elements reserved so far.
func (a *Arena[B]) Len() int { return len(a.data) }
