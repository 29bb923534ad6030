package dom

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestBlockBreakStyle(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := FromHTML("<p>foo <b>bar</b></p><ul><li>baz</li></ul>")
	if err != nil {
		t.Fatal(err.Error())
	}
	for _, tag := range []string{"p", "ul", "li"} {
		if !HasBlockBreakStyle(FindElement(host, tag)) {
			t.Errorf("expected <%s> to break the line flow", tag)
		}
	}
	if HasBlockBreakStyle(FindElement(host, "b")) {
		t.Errorf("expected <b> to be inline")
	}
	if HasBlockBreakStyle(FindText(host, "bar")) {
		t.Errorf("expected text run not to break the line flow")
	}
	// custom elements carry no atom and fall back to the name table
	custom := &html.Node{Type: html.ElementNode, Data: "blockquote"}
	if !HasBlockBreakStyle(custom) {
		t.Errorf("expected atom-less <blockquote> to break the line flow")
	}
}

func TestIsEditingHost(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := FromHTML(`<p>foo</p><div contenteditable="false">bar</div>`)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !IsEditingHost(host) {
		t.Errorf("expected wrapper div to be an editing host")
	}
	if IsEditingHost(FindElement(host, "p")) {
		t.Errorf("expected plain <p> not to be an editing host")
	}
	if IsEditingHost(ChildAt(host, 1)) {
		t.Errorf(`expected contenteditable="false" div not to be a host`)
	}
	if !IsEditingHost(&html.Node{Type: html.DocumentNode}) {
		t.Errorf("expected document root to count as a host")
	}
}
