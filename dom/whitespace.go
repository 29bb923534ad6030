package dom

import (
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Significance classifies how the rendering engine treats nodes and
// characters. The caret engine never decides itself what is visible; it
// asks a Significance implementation.
type Significance interface {
	// IsUnrendered reports whether node contributes no visible content.
	IsUnrendered(node *html.Node) bool
	// NextSignificantOffset returns the byte offset of the first rendered
	// character of text at or after offset. ok is false if the rest of the
	// run is insignificant.
	NextSignificantOffset(text *html.Node, offset int) (offs int, ok bool)
}

// DefaultSignificance implements Significance with the whitespace-collapsing
// rules of normal HTML flow: runs of spacing characters collapse, zero-width
// characters never render, and empty non-void elements paint nothing.
type DefaultSignificance struct{}

var _ Significance = DefaultSignificance{}

// IsUnrendered is part of the Significance interface.
func (DefaultSignificance) IsUnrendered(node *html.Node) bool {
	return IsUnrendered(node)
}

// NextSignificantOffset is part of the Significance interface.
func (DefaultSignificance) NextSignificantOffset(text *html.Node, offset int) (int, bool) {
	return NextSignificantOffset(text, offset)
}

// isCollapsible reports whitespace that collapses in normal flow, plus
// zero-width characters which never render at all.
func isCollapsible(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\u200b', '\ufeff':
		return true
	}
	return false
}

// IsUnrenderedWhitespace reports whether node is a text run consisting
// entirely of collapsible whitespace (an empty run counts).
func IsUnrenderedWhitespace(node *html.Node) bool {
	if !IsText(node) {
		return false
	}
	for _, r := range node.Data {
		if !isCollapsible(r) {
			return false
		}
	}
	return true
}

// renderedWhenEmpty lists void elements that paint even without children.
var renderedWhenEmpty = map[atom.Atom]bool{
	atom.Br:     true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Area:   true,
	atom.Embed:  true,
	atom.Object: true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// IsUnrendered reports whether node contributes no visible content:
// collapsible whitespace runs, comments, and childless elements that are
// not void elements.
func IsUnrendered(node *html.Node) bool {
	if node == nil {
		return true
	}
	switch node.Type {
	case html.TextNode:
		return IsUnrenderedWhitespace(node)
	case html.CommentNode, html.DoctypeNode:
		return true
	case html.ElementNode:
		if renderedWhenEmpty[node.DataAtom] {
			return false
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if !IsUnrendered(c) {
				return false
			}
		}
		return true
	}
	return false
}

// NextSignificantOffset scans a text run for the first rendered character at
// or after offset and returns its byte offset. ok is false if every
// remaining character of the run is collapsible.
//
// offset must sit on a UTF-8 rune boundary; the returned offset always does.
func NextSignificantOffset(text *html.Node, offset int) (int, bool) {
	if !IsText(text) || offset < 0 || offset > len(text.Data) {
		return 0, false
	}
	for i := offset; i < len(text.Data); {
		r, w := utf8.DecodeRuneInString(text.Data[i:])
		if !isCollapsible(r) {
			return i, true
		}
		i += w
	}
	return 0, false
}
