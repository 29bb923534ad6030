/*
Package dom is the document-tree provider for the caret engine.

The engine operates on trees of golang.org/x/net/html nodes. This package
collects the small provider surface the engine relies on: node
classification, lengths and child-slot arithmetic, sibling lookups, checked
removal, and the rendering-significance and style predicates that decide
what counts as unrendered whitespace, a block-breaking element, or an
editing host.

All functions are pure lookups except Remove, which is the single mutation
entry point.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package dom

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
