package caret

import (
	"fmt"

	"github.com/npillmayer/caret/dom"
	"golang.org/x/net/html"
)

// Boundary is an immutable position descriptor: a container node plus an
// integer offset.
//
// If Container is a text run, Offset is a byte offset into the run and must
// sit on a UTF-8 rune boundary, 0 ≤ Offset ≤ len(run). If Container is an
// element, Offset is a child-slot index, 0 ≤ Offset ≤ child count, where
// offset 0 denotes the slot before the first child.
//
// Two boundaries are equal iff container and offset are identical. There is
// no implicit normalization across the two encodings: a text boundary at
// offset 0 and the element boundary in front of the same run are distinct
// values, even though they denote the same visual position.
type Boundary struct {
	Container *html.Node
	Offset    int
}

// Start returns the boundary at the very start of node.
func Start(node *html.Node) Boundary {
	return Boundary{Container: node}
}

// End returns the boundary after the last child (or character) of node.
func End(node *html.Node) Boundary {
	return Boundary{Container: node, Offset: dom.NodeLength(node)}
}

// Before returns the boundary immediately in front of node, expressed in
// node's parent.
func Before(node *html.Node) Boundary {
	return Boundary{Container: node.Parent, Offset: dom.NodeIndex(node)}
}

// After returns the boundary immediately behind node, expressed in node's
// parent.
func After(node *html.Node) Boundary {
	return Boundary{Container: node.Parent, Offset: dom.NodeIndex(node) + 1}
}

// Equals reports strict container+offset equality.
func (b Boundary) Equals(other Boundary) bool {
	return b.Container == other.Container && b.Offset == other.Offset
}

// IsValid reports whether the boundary references a node and an offset
// within the node's capacity.
func (b Boundary) IsValid() bool {
	return b.Container != nil && b.Offset >= 0 && b.Offset <= dom.NodeLength(b.Container)
}

// String returns a diagnostic rendition of the boundary.
func (b Boundary) String() string {
	return fmt.Sprintf("%s⟨%d⟩", dom.NodeName(b.Container), b.Offset)
}

// Compare orders two boundaries of one tree in document order. It returns
// -1 if a precedes b, +1 if a follows b, and 0 for coinciding positions.
//
// Coinciding means equal (container, offset) pairs; boundaries in unrelated
// trees compare as 0 as well, so callers must check tree membership first
// (see Range.Validate).
func Compare(a, b Boundary) int {
	if a.Container == b.Container {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	}
	if dom.Contains(a.Container, b.Container) {
		child := b.Container
		for child.Parent != a.Container {
			child = child.Parent
		}
		if dom.NodeIndex(child) < a.Offset {
			return 1
		}
		return -1
	}
	if dom.Contains(b.Container, a.Container) {
		child := a.Container
		for child.Parent != b.Container {
			child = child.Parent
		}
		if dom.NodeIndex(child) < b.Offset {
			return -1
		}
		return 1
	}
	return compareSiblingOrder(a.Container, b.Container)
}

// compareSiblingOrder orders two unrelated nodes by the sibling order of
// their topmost diverging ancestors.
func compareSiblingOrder(a, b *html.Node) int {
	pa := pathFromRoot(a)
	pb := pathFromRoot(b)
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			if i == 0 {
				return 0 // different trees
			}
			if dom.NodeIndex(pa[i]) < dom.NodeIndex(pb[i]) {
				return -1
			}
			return 1
		}
	}
	return 0
}

func pathFromRoot(node *html.Node) []*html.Node {
	var path []*html.Node
	for n := node; n != nil; n = n.Parent {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// CommonAncestor returns the deepest node containing both boundaries, or
// nil if they live in unrelated trees.
func CommonAncestor(a, b Boundary) *html.Node {
	seen := make(map[*html.Node]bool)
	for n := a.Container; n != nil; n = n.Parent {
		seen[n] = true
	}
	for n := b.Container; n != nil; n = n.Parent {
		if seen[n] {
			return n
		}
	}
	return nil
}
