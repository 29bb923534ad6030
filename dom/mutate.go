package dom

import (
	"golang.org/x/net/html"
)

// Remove detaches node from its parent.
//
// Remove is the only mutation this package performs on a document tree.
// It rejects detached nodes and editing hosts, so that a caller holding
// boundaries into the tree can rely on their containers staying alive.
func Remove(node *html.Node) error {
	if node == nil || node.Parent == nil {
		return ErrDetachedNode
	}
	if IsEditingHost(node) {
		return ErrHostRemoval
	}
	T().Debugf("dom: removing %s", NodeName(node))
	node.Parent.RemoveChild(node)
	return nil
}

// NodeName returns a short diagnostic name for a node.
func NodeName(node *html.Node) string {
	if node == nil {
		return "#nil"
	}
	switch node.Type {
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	default:
		return node.Data
	}
}
