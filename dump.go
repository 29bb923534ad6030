package caret

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/caret/dom"
	"golang.org/x/net/html"
	"golang.org/x/term"
)

type nodeids struct {
	idTable map[*html.Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*html.Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *html.Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *html.Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a document tree in Graphviz DOT format
// (for debugging purposes). The containers of rng's boundaries are drawn
// with their boundary offsets attached, so a misbehaving trim or expansion
// can be inspected visually.
func Tree2Dot(w io.Writer, root *html.Node, rng Range) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	dom.EachNode(root, func(n *html.Node) bool {
		id := ids.alloc(n)
		label := dom.NodeName(n)
		if dom.IsText(n) {
			label = fmt.Sprintf("%q", clip(n.Data, 12))
		}
		attrs := ""
		if n == rng.Start.Container {
			attrs = fmt.Sprintf(",color=blue,xlabel=\"start@%d\"", rng.Start.Offset)
		}
		if n == rng.End.Container {
			attrs += fmt.Sprintf(",color=red,xlabel=\"end@%d\"", rng.End.Offset)
		}
		nodelist += fmt.Sprintf("\t%d [label=\"%s\"%s];\n", id, escape(label), attrs)
		if n.Parent != nil {
			edgelist += fmt.Sprintf("\t%d -> %d;\n", ids.find(n.Parent), id)
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// HighlightText writes the text content of host to w, with the span covered
// by rng highlighted (for debugging purposes). Output is wrapped to the
// terminal width if w is attached to one.
func HighlightText(w io.Writer, host *html.Node, rng Range) {
	width := 80
	if term.IsTerminal(0) {
		if tw, _, err := term.GetSize(0); err == nil && tw > 0 {
			width = tw
		}
	}
	marked := color.New(color.FgBlack, color.BgYellow)
	col := 0
	emit := func(s string, hot bool) {
		for _, line := range strings.SplitAfter(s, "\n") {
			for len(line) > 0 {
				if col >= width {
					io.WriteString(w, "\n")
					col = 0
				}
				room := width - col
				part := line
				if len(part) > room {
					part = part[:room]
				}
				if hot {
					marked.Fprint(w, part)
				} else {
					io.WriteString(w, part)
				}
				if strings.HasSuffix(part, "\n") {
					col = 0
				} else {
					col += len(part)
				}
				line = line[len(part):]
			}
		}
	}
	dom.EachNode(host, func(n *html.Node) bool {
		if !dom.IsText(n) {
			return true
		}
		lo, hi := textOverlap(n, rng)
		emit(n.Data[:lo], false)
		emit(n.Data[lo:hi], true)
		emit(n.Data[hi:], false)
		return true
	})
	io.WriteString(w, "\n")
}

// textOverlap computes the byte span of a text run covered by rng.
func textOverlap(t *html.Node, rng Range) (lo, hi int) {
	n := len(t.Data)
	lo, hi = 0, n
	switch {
	case t == rng.Start.Container:
		if rng.Start.Offset < n {
			lo = rng.Start.Offset
		} else {
			lo = n
		}
	case Compare(rng.Start, Boundary{Container: t}) > 0:
		lo = n
	}
	switch {
	case t == rng.End.Container:
		if rng.End.Offset < n {
			hi = rng.End.Offset
		}
	case Compare(rng.End, Boundary{Container: t, Offset: n}) < 0:
		hi = 0
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
