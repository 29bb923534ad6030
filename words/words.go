package words

import (
	"strings"

	"github.com/npillmayer/caret"
	"github.com/npillmayer/caret/dom"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Segmenter finds word boundaries inside text runs, per UAX#29. It
// implements caret.WordSegmenter.
//
// Boundaries whose container is not a text run are reported as having no
// word boundary; the engine then keeps the original position. All offsets
// are byte offsets on UTF-8 rune boundaries.
type Segmenter struct{}

var _ caret.WordSegmenter = Segmenter{}

// New creates a word segmenter.
func New() Segmenter {
	return Segmenter{}
}

// Env bundles this segmenter with the dom package's block and host
// classifiers, ready to be handed to caret.Expand.
func Env() caret.Env {
	return caret.Env{
		Words:   New(),
		IsBlock: dom.HasBlockBreakStyle,
		IsHost:  dom.IsEditingHost,
	}
}

// PreviousWordBoundary returns the closest word boundary strictly before b
// within b's text run, with ok false if there is none (or if b's container
// is not a text run).
func (s Segmenter) PreviousWordBoundary(b caret.Boundary) (caret.Boundary, bool) {
	if !dom.IsText(b.Container) {
		return b, false
	}
	prev, found := -1, false
	for _, brk := range breakOffsets(b.Container.Data) {
		if brk >= b.Offset {
			break
		}
		prev, found = brk, true
	}
	if !found {
		return b, false
	}
	return caret.Boundary{Container: b.Container, Offset: prev}, true
}

// NextWordBoundary returns the closest word boundary strictly after b
// within b's text run, with ok false if there is none (or if b's container
// is not a text run).
func (s Segmenter) NextWordBoundary(b caret.Boundary) (caret.Boundary, bool) {
	if !dom.IsText(b.Container) {
		return b, false
	}
	for _, brk := range breakOffsets(b.Container.Data) {
		if brk > b.Offset {
			return caret.Boundary{Container: b.Container, Offset: brk}, true
		}
	}
	return b, false
}

// breakOffsets segments text by UAX#29 word breaking and returns all break
// positions as cumulative byte offsets, including 0 and len(text).
func breakOffsets(text string) []int {
	breaks := []int{0}
	if text == "" {
		return breaks
	}
	seg := segment.NewSegmenter(uax29.NewWordBreaker(1))
	seg.Init(strings.NewReader(text))
	pos := 0
	for seg.Next() {
		pos += len(seg.Bytes())
		breaks = append(breaks, pos)
	}
	if pos < len(text) {
		// segmentation fell short; end of run is always a boundary
		T().Errorf("words: segmenter covered %d of %d bytes", pos, len(text))
		breaks = append(breaks, len(text))
	}
	return breaks
}
