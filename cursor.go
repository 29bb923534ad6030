package caret

import (
	"fmt"

	"github.com/npillmayer/caret/dom"
	"golang.org/x/net/html"
)

// Cursor is a transient tree-walking handle derived from exactly one
// Boundary. It owns no tree state, only a position, and moves in atomic
// steps: into a child, across a sibling (text runs count as one unit), or
// up-and-across when leaving a container.
//
// A cursor either faces a node (the node that would be traversed next going
// forward) or sits at the end of a container, after its last child. A
// cursor built from a boundary strictly inside a text run additionally
// remembers the in-run offset until the first movement; this keeps such a
// cursor distinct from one built at the element boundary in front of the
// run, as required by strict boundary equality.
type Cursor struct {
	node    *html.Node // faced node, or the container when atEnd
	atEnd   bool
	textOff int // in-run offset, only meaningful while facing a text run
}

// FromBoundary creates a cursor at boundary b in O(1).
func FromBoundary(b Boundary) Cursor {
	if dom.IsAtEnd(b.Container, b.Offset) {
		return Cursor{node: b.Container, atEnd: true}
	}
	if dom.IsText(b.Container) {
		return Cursor{node: b.Container, textOff: b.Offset}
	}
	return Cursor{node: dom.ChildAt(b.Container, b.Offset)}
}

// Boundary converts the cursor position back into a boundary.
//
// A cursor facing a text run it was created inside of yields the original
// text boundary; any other faced node yields the element boundary in front
// of it; an at-end cursor yields the end boundary of its container.
func (c Cursor) Boundary() Boundary {
	if c.atEnd {
		return End(c.node)
	}
	if dom.IsText(c.node) && c.textOff > 0 {
		return Boundary{Container: c.node, Offset: c.textOff}
	}
	if c.node.Parent == nil {
		return Start(c.node)
	}
	return Before(c.node)
}

// AtEnd reports whether the cursor sits after the last child (or at the
// text length) of a container.
func (c Cursor) AtEnd() bool {
	return c.atEnd
}

// Node returns the node the cursor faces, the node that would be traversed
// next going forward. It is nil for an at-end cursor.
func (c Cursor) Node() *html.Node {
	if c.atEnd {
		return nil
	}
	return c.node
}

// PrevSibling returns the node immediately behind the cursor at the same
// tree depth, or nil.
func (c Cursor) PrevSibling() *html.Node {
	if c.atEnd {
		return c.node.LastChild
	}
	return c.node.PrevSibling
}

// Parent returns the container the cursor is positioned in.
func (c Cursor) Parent() *html.Node {
	if c.atEnd {
		return c.node
	}
	return c.node.Parent
}

// Equals reports position equality: two cursors denote the same logical
// position iff their underlying boundaries are equal.
func (c Cursor) Equals(other Cursor) bool {
	return c.node == other.node && c.atEnd == other.atEnd && c.textOff == other.textOff
}

// Next advances the cursor one atomic step forward: into the first child of
// a faced element, across a faced text run, or up to the parent's end when
// nothing is left in the current container. It reports false at the very
// end of the tree, leaving the cursor in place.
func (c *Cursor) Next() bool {
	node := c.node
	if c.atEnd || !dom.IsElement(node) {
		if next := node.NextSibling; next != nil {
			c.node, c.atEnd = next, false
		} else {
			parent := node.Parent
			if parent == nil {
				return false
			}
			c.node, c.atEnd = parent, true
		}
	} else if first := node.FirstChild; first != nil {
		c.node, c.atEnd = first, false
	} else {
		c.atEnd = true
	}
	c.textOff = 0
	return true
}

// Prev moves the cursor one atomic step backward, symmetric to Next: down
// to the end of a preceding element sibling, across a preceding text run,
// or out in front of the current container. It reports false at the very
// start of the tree, leaving the cursor in place.
//
// Stepping backward into an element positions the cursor at that element's
// end, so that backward walks visit container interiors just like forward
// walks do.
func (c *Cursor) Prev() bool {
	node := c.node
	if c.atEnd {
		if last := node.LastChild; last != nil {
			c.node, c.atEnd = last, dom.IsElement(last)
		} else {
			c.atEnd = false
		}
	} else if prev := node.PrevSibling; prev != nil {
		c.node, c.atEnd = prev, dom.IsElement(prev)
	} else {
		parent := node.Parent
		if parent == nil {
			return false
		}
		c.node, c.atEnd = parent, false
	}
	c.textOff = 0
	return true
}

// NextWhile advances the cursor while cond holds for the current position,
// stopping on the first position where cond fails or when the tree ends.
func (c *Cursor) NextWhile(cond func(Cursor) bool) {
	for cond(*c) && c.Next() {
	}
}

// PrevWhile is the backward counterpart of NextWhile.
func (c *Cursor) PrevWhile(cond func(Cursor) bool) {
	for cond(*c) && c.Prev() {
	}
}

// String returns a diagnostic rendition of the cursor position.
func (c Cursor) String() string {
	if c.atEnd {
		return fmt.Sprintf("⊣%s", dom.NodeName(c.node))
	}
	return fmt.Sprintf("→%s", dom.NodeName(c.node))
}
