/*
Package words is the word-segmentation collaborator for the caret engine.

It locates word boundaries inside text runs using Unicode UAX#29 word
breaking, as implemented by github.com/npillmayer/uax. The caret engine
itself has no opinion on what a word is; it calls a WordSegmenter and this
package provides the default one.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package words

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
