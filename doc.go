/*
Package caret normalizes boundaries and ranges in tree-structured rich-text
documents.

Boundaries and ranges

A Boundary is a position in a document tree, expressed as a container node
plus an integer offset: a byte offset inside a text run, or a child-slot
index inside an element. A Range is a directed pair of boundaries. The
engine adjusts such pairs in semantically meaningful ways:

  - Trim contracts a range past content that has no visual rendering,
    such as collapsible whitespace or empty inline wrappers.
  - Expand grows a range to the nearest semantic unit, currently words
    (delegating to a segmentation collaborator) and blocks (walking
    ancestors up to a line-breaking element or the editing host).
  - Seek walks one end of a range toward the other while a caller
    predicate holds, in either direction.

The engine is deliberately ignorant of what counts as unrendered, what a
word is, and what breaks a line: those decisions are injected as predicate
collaborators (see package dom and package words for the defaults). The
engine itself is stateless between calls, synchronous, and leaves the tree
untouched, with the single exception of TrimUnrendered, which removes
nodes classified as unrendered, as an explicit and audited side effect.

The document tree is a tree of golang.org/x/net/html nodes, owned by the
caller. The engine assumes single-writer access during any one operation
and performs no locking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package caret

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// caretError is an error type for the caret module
type caretError string

func (e caretError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = caretError("illegal arguments")

// ErrMalformedRange signals a boundary pair that does not live in one tree
// or is not in forward document order. The walking algorithms are only
// defined for forward-ordered same-tree pairs, so they reject anything
// else up front.
const ErrMalformedRange = caretError("boundaries do not form a forward-ordered range")

// ErrUnknownUnit signals an expansion unit this engine does not implement.
// Expansion never falls back to a default unit.
const ErrUnknownUnit = caretError("unknown expansion unit")

// ErrMutationRejected signals that the document tree refused the removal of
// an unrendered node. Removals already applied are kept; see TrimUnrendered.
const ErrMutationRejected = caretError("document tree rejected node removal")
