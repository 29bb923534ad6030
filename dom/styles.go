package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockBreak lists elements that introduce a visual line break, per the
// default rendering of HTML. The engine's block expansion stops at the
// outermost of these below the editing host.
var blockBreak = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Body:       true,
	atom.Br:         true,
	atom.Dd:         true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Fieldset:   true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Footer:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Nav:        true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Td:         true,
	atom.Th:         true,
	atom.Tr:         true,
	atom.Ul:         true,
}

// HasBlockBreakStyle reports whether node breaks the line flow when
// rendered. Classification is by element defaults; author CSS is outside
// the scope of this provider.
func HasBlockBreakStyle(node *html.Node) bool {
	if node == nil || node.Type != html.ElementNode {
		return false
	}
	if node.DataAtom != 0 {
		return blockBreak[node.DataAtom]
	}
	return blockBreakNames[node.Data]
}

// blockBreakNames covers elements parsed without an interned atom.
var blockBreakNames = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"div": true, "dl": true, "fieldset": true, "figure": true,
	"footer": true, "form": true, "header": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "ul": true,
}

// IsEditingHost reports whether node is the outermost container of an
// editable region. An element is a host if it carries a contenteditable
// attribute that is not "false"; document roots count as hosts as well.
func IsEditingHost(node *html.Node) bool {
	if node == nil {
		return false
	}
	if node.Type == html.DocumentNode {
		return true
	}
	if node.Type != html.ElementNode {
		return false
	}
	for _, a := range node.Attr {
		if a.Key == "contenteditable" {
			return a.Val != "false"
		}
	}
	return false
}
