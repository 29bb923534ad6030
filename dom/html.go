package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML parses an HTML fragment and wraps it in a fresh editing host.
//
// The returned node is a div carrying contenteditable="true", with the
// fragment's top-level nodes as its children. It resembles the editable
// region of a rich-text editor and is the usual way to set up a tree for
// the caret engine (and for tests).
func FromHTML(fragment string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, err
	}
	host := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "contenteditable", Val: "true"}},
	}
	for _, n := range nodes {
		host.AppendChild(n)
	}
	if host.FirstChild == nil && fragment != "" {
		return nil, ErrNoFragment
	}
	return host, nil
}

// OuterHTML serializes a node and its descendents back to HTML.
func OuterHTML(node *html.Node) string {
	if node == nil {
		return ""
	}
	var bf bytes.Buffer
	_ = html.Render(&bf, node)
	return bf.String()
}

// InnerText collects the textual content of a node and all its descendents,
// in document order. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that dom.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(node *html.Node) string {
	var bf bytes.Buffer
	collectText(node, &bf)
	return bf.String()
}

func collectText(n *html.Node, bf *bytes.Buffer) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		bf.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, bf)
	}
}

// EachNode visits node and all its descendents in document order. The walk
// stops early when f returns false.
func EachNode(node *html.Node, f func(*html.Node) bool) bool {
	if node == nil {
		return true
	}
	if !f(node) {
		return false
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if !EachNode(c, f) {
			return false
		}
	}
	return true
}

// FindText returns the first text run below root whose content contains s,
// or nil if there is none.
func FindText(root *html.Node, s string) (found *html.Node) {
	EachNode(root, func(n *html.Node) bool {
		if IsText(n) && strings.Contains(n.Data, s) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindElement returns the first element below (or at) root with the given
// tag name, or nil if there is none.
func FindElement(root *html.Node, tag string) (found *html.Node) {
	EachNode(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return found
}
