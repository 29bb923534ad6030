package caret

import (
	"fmt"

	"github.com/npillmayer/caret/dom"
)

// Unit is a semantic unit a range can be expanded to.
type Unit int

const (
	// UnitWord expands to word boundaries, as decided by a segmentation
	// collaborator.
	UnitWord Unit = iota + 1
	// UnitBlock expands to the enclosing block-level container.
	UnitBlock
)

func (u Unit) String() string {
	switch u {
	case UnitWord:
		return "word"
	case UnitBlock:
		return "block"
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// WordSegmenter locates word boundaries around a given boundary. What
// counts as a word is owned entirely by the implementation; package words
// provides one backed by UAX#29 segmentation.
type WordSegmenter interface {
	// PreviousWordBoundary returns the closest word boundary strictly
	// before b, with ok false if there is none.
	PreviousWordBoundary(b Boundary) (Boundary, bool)
	// NextWordBoundary returns the closest word boundary strictly after b,
	// with ok false if there is none.
	NextWordBoundary(b Boundary) (Boundary, bool)
}

// Env bundles the collaborators consulted during range expansion. Zero
// fields fall back to the dom package's classifiers; a nil Words segmenter
// leaves word expansion without effect.
type Env struct {
	Words   WordSegmenter
	IsBlock NodeCond
	IsHost  NodeCond
}

func (env Env) isBlock() NodeCond {
	if env.IsBlock == nil {
		return dom.HasBlockBreakStyle
	}
	return env.IsBlock
}

func (env Env) isHost() NodeCond {
	if env.IsHost == nil {
		return dom.IsEditingHost
	}
	return env.IsHost
}

// Expand grows a range outward to the given semantic unit and returns the
// expanded range. Units other than UnitWord and UnitBlock are a caller
// error: Expand fails fast with ErrUnknownUnit naming the offending value
// and leaves the input unobserved.
func Expand(rng Range, unit Unit, env Env) (Range, error) {
	switch unit {
	case UnitWord, UnitBlock:
	default:
		return rng, fmt.Errorf("%w: %q", ErrUnknownUnit, unit.String())
	}
	if err := rng.Validate(); err != nil {
		return rng, err
	}
	var start, end Boundary
	if unit == UnitWord {
		start, end = ExpandToWord(rng.Start, rng.End, env.Words)
	} else {
		start, end = ExpandToBlock(rng.Start, rng.End, env.isBlock(), env.isHost())
	}
	return NewRange(start, end), nil
}

// ExpandToWord moves start to the previous word boundary and end to the
// next word boundary. Boundaries the segmenter cannot improve on are kept
// as they are, so the expansion is outward-monotonic.
func ExpandToWord(start, end Boundary, seg WordSegmenter) (Boundary, Boundary) {
	if seg == nil {
		return start, end
	}
	if b, ok := seg.PreviousWordBoundary(start); ok {
		start = b
	}
	if b, ok := seg.NextWordBoundary(end); ok {
		end = b
	}
	return start, end
}

// ExpandToBlock grows a boundary pair to fully enclose the block containing
// it: starting at the common ancestor container, ancestors are walked
// upward until one has block-breaking style or is an editing host, and the
// resulting block is spanned whole. The returned end boundary denotes the
// position immediately after the block, one step past its last child.
func ExpandToBlock(start, end Boundary, isBlock, isHost NodeCond) (Boundary, Boundary) {
	container := CommonAncestor(start, end)
	if container == nil {
		return start, end
	}
	block := container
	for n := container; n != nil; n = n.Parent {
		block = n
		if isBlock(n) || isHost(n) {
			break
		}
	}
	T().Debugf("caret: expanding to block <%s>", dom.NodeName(block))
	if block.Parent == nil {
		return Start(block), End(block)
	}
	return Start(block), After(block)
}

// ExpandBoundaries grows a cursor pair apart: the start cursor walks
// backward and the end cursor forward, each stepping while the adjacent
// node on its outside satisfies ignore, or, at a container edge, while
// until does not fire for the container. It is used to make sure a
// boundary is not sitting exactly at the edge of its container when a
// caller needs room to probe a genuine sibling.
//
// A nil ignore never ignores and a nil until always fires, which together
// make ExpandBoundaries a no-op.
func ExpandBoundaries(start, end *Cursor, until, ignore NodeCond) {
	until = orTrueNode(until)
	ignore = orFalseNode(ignore)
	start.PrevWhile(func(c Cursor) bool {
		if prev := c.PrevSibling(); prev != nil {
			return ignore(prev)
		}
		return !until(c.Parent())
	})
	end.NextWhile(func(c Cursor) bool {
		if next := c.Node(); next != nil {
			return ignore(next)
		}
		return !until(c.Parent())
	})
}
