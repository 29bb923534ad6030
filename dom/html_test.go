package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	host, err := FromHTML("<p>Hello <b>World</b></p>")
	if err != nil {
		t.Fatal(err.Error())
	}
	if !IsEditingHost(host) {
		t.Errorf("expected fragment wrapper to be an editing host")
	}
	if cnt := ChildCount(host); cnt != 1 {
		t.Fatalf("expected host to have 1 child, has %d", cnt)
	}
	p := host.FirstChild
	if p.Data != "p" {
		t.Errorf("expected first child to be <p>, is %s", NodeName(p))
	}
	t.Logf("outer = %s", OuterHTML(host))
	if txt := InnerText(host); txt != "Hello World" {
		t.Errorf("expected inner text 'Hello World', is '%s'", txt)
	}
}

func TestFromHTMLKeepsWhitespace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := FromHTML("  <p>foo</p>   ")
	if err != nil {
		t.Fatal(err.Error())
	}
	if cnt := ChildCount(host); cnt != 3 {
		t.Fatalf("expected 3 children (ws, p, ws), have %d", cnt)
	}
	if !IsText(host.FirstChild) || !IsUnrenderedWhitespace(host.FirstChild) {
		t.Errorf("expected leading whitespace run to survive parsing")
	}
}

func TestFromHTMLEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := FromHTML("")
	if err != nil {
		t.Fatal(err.Error())
	}
	if ChildCount(host) != 0 {
		t.Errorf("expected empty fragment to yield an empty host")
	}
}

func TestFindHelpers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := FromHTML("<p>foo</p><p>bar<i>baz</i></p>")
	if err != nil {
		t.Fatal(err.Error())
	}
	if n := FindText(host, "baz"); n == nil || n.Parent.Data != "i" {
		t.Errorf("expected to find 'baz' inside <i>")
	}
	if n := FindElement(host, "i"); n == nil {
		t.Errorf("expected to find the <i> element")
	}
	if FindText(host, "nope") != nil {
		t.Errorf("expected no text run for 'nope'")
	}
}

func TestEachNodeStopsEarly(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := FromHTML("<p>foo</p><p>bar</p>")
	if err != nil {
		t.Fatal(err.Error())
	}
	visited := 0
	EachNode(host, func(n *html.Node) bool {
		visited++
		return !(IsText(n) && strings.Contains(n.Data, "foo"))
	})
	// host, p, "foo": the walk must not reach the second <p>
	if visited != 3 {
		t.Errorf("expected walk to stop after 3 nodes, visited %d", visited)
	}
}
