package caret

import (
	"fmt"

	"github.com/npillmayer/caret/dom"
)

// Range is a directed span of the document tree, [Start, End). A range may
// be collapsed (Start == End). No invariant enforces document order of the
// two boundaries at construction time; the walking algorithms validate
// order themselves and reject malformed pairs with ErrMalformedRange.
type Range struct {
	Start Boundary
	End   Boundary
}

// Collapsed creates a collapsed range at boundary b.
func Collapsed(b Boundary) Range {
	return Range{Start: b, End: b}
}

// NewRange creates a range from a boundary pair. Construction never fails;
// callers are responsible for supplying a forward-ordered pair.
func NewRange(start, end Boundary) Range {
	return Range{Start: start, End: end}
}

// IsCollapsed reports whether both boundaries are equal.
func (r Range) IsCollapsed() bool {
	return r.Start.Equals(r.End)
}

// Equals reports pairwise strict boundary equality. Equivalent positions
// expressed through different containers do not compare equal.
func (r Range) Equals(other Range) bool {
	return r.Start.Equals(other.Start) && r.End.Equals(other.End)
}

// Validate checks that both boundaries resolve to nodes of one tree, carry
// offsets within their container's capacity, and are in forward document
// order. Boundaries without a container are reported as
// ErrIllegalArguments, every other violation as ErrMalformedRange.
func (r Range) Validate() error {
	if r.Start.Container == nil || r.End.Container == nil {
		return fmt.Errorf("%w: range boundary without container", ErrIllegalArguments)
	}
	if !r.Start.IsValid() || !r.End.IsValid() {
		return fmt.Errorf("%w: boundary out of node capacity", ErrMalformedRange)
	}
	if dom.Root(r.Start.Container) != dom.Root(r.End.Container) {
		return fmt.Errorf("%w: boundaries in unrelated trees", ErrMalformedRange)
	}
	if Compare(r.Start, r.End) > 0 {
		return fmt.Errorf("%w: end precedes start", ErrMalformedRange)
	}
	return nil
}

// String returns a diagnostic rendition of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%v … %v)", r.Start, r.End)
}
