package dom

import (
	"golang.org/x/net/html"
)

// IsText reports whether node is a text run.
func IsText(node *html.Node) bool {
	return node != nil && node.Type == html.TextNode
}

// IsElement reports whether node is an element container.
//
// Document and fragment nodes count as containers as well, so that a parsed
// document root can serve as the outermost editing scope.
func IsElement(node *html.Node) bool {
	if node == nil {
		return false
	}
	return node.Type == html.ElementNode || node.Type == html.DocumentNode
}

// NodeLength returns the boundary capacity of a node: the byte length of a
// text run, or the child count of a container.
//
// Offsets into text runs are byte offsets and must sit on UTF-8 rune
// boundaries.
func NodeLength(node *html.Node) int {
	if node == nil {
		return 0
	}
	if IsText(node) {
		return len(node.Data)
	}
	return ChildCount(node)
}

// ChildCount returns the number of children of a container node.
func ChildCount(node *html.Node) int {
	n := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	return n
}

// ChildAt returns the i-th child of a container, or nil if i is out of range.
func ChildAt(node *html.Node, i int) *html.Node {
	if node == nil || i < 0 {
		return nil
	}
	c := node.FirstChild
	for ; c != nil && i > 0; c = c.NextSibling {
		i--
	}
	return c
}

// NodeIndex returns the child-slot index of node within its parent, or -1
// for detached nodes.
func NodeIndex(node *html.Node) int {
	if node == nil || node.Parent == nil {
		return -1
	}
	i := 0
	for c := node.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c == node {
			return i
		}
		i++
	}
	return -1
}

// IsAtEnd reports whether (node, offset) denotes the position after the last
// child of a container, or the position at the end of a text run.
func IsAtEnd(node *html.Node, offset int) bool {
	return offset >= NodeLength(node)
}

// NodeAtOffset resolves a boundary to the node it is positioned in front of.
// For a text container the text run itself is returned.
func NodeAtOffset(node *html.Node, offset int) *html.Node {
	if IsText(node) {
		return node
	}
	return ChildAt(node, offset)
}

// Contains reports whether ancestor is a strict ancestor of node.
func Contains(ancestor, node *html.Node) bool {
	if ancestor == nil || node == nil {
		return false
	}
	for n := node.Parent; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Root returns the topmost node of the tree containing node.
func Root(node *html.Node) *html.Node {
	if node == nil {
		return nil
	}
	for node.Parent != nil {
		node = node.Parent
	}
	return node
}
