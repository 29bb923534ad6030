package caret

import (
	"testing"

	"github.com/npillmayer/caret/dom"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// position describes a cursor for transition-table tests: the name of the
// faced node (or of the container when at end) plus the at-end flag.
type position struct {
	name  string
	atEnd bool
}

func posOf(c Cursor) position {
	if c.AtEnd() {
		return position{dom.NodeName(c.Parent()), true}
	}
	return position{dom.NodeName(c.Node()), false}
}

func TestCursorWalkForward(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	host, err := dom.FromHTML("<p>ab<b></b></p><i>c</i>")
	if err != nil {
		t.Fatal(err.Error())
	}
	expected := []position{
		{"p", false},
		{"#text", false}, // ab, crossed as one unit
		{"b", false},
		{"b", true},
		{"p", true},
		{"i", false},
		{"#text", false}, // c
		{"i", true},
		{"div", true},
	}
	cursor := FromBoundary(Start(host))
	for i, exp := range expected {
		if pos := posOf(cursor); pos != exp {
			t.Errorf("step %d: at %v, expected %v", i, pos, exp)
		}
		if i < len(expected)-1 && !cursor.Next() {
			t.Fatalf("step %d: cursor refused to advance", i)
		}
	}
	if cursor.Next() {
		t.Errorf("expected cursor to stop at the very end of the tree")
	}
	if pos := posOf(cursor); pos != (position{"div", true}) {
		t.Errorf("expected refused step to leave cursor in place, at %v", pos)
	}
}

func TestCursorWalkBackward(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	host, err := dom.FromHTML("<p>ab<b></b></p><i>c</i>")
	if err != nil {
		t.Fatal(err.Error())
	}
	expected := []position{
		{"div", true},
		{"i", true}, // stepping into an element lands at its end
		{"#text", false},
		{"i", false},
		{"p", true},
		{"b", true},
		{"b", false},
		{"#text", false},
		{"p", false},
		{"div", false},
	}
	cursor := FromBoundary(End(host))
	for i, exp := range expected {
		if pos := posOf(cursor); pos != exp {
			t.Errorf("step %d: at %v, expected %v", i, pos, exp)
		}
		if i < len(expected)-1 && !cursor.Prev() {
			t.Fatalf("step %d: cursor refused to step back", i)
		}
	}
	if cursor.Prev() {
		t.Errorf("expected cursor to stop at the very start of the tree")
	}
}

func TestCursorFromBoundary(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := dom.FromHTML("<p>foo</p><p>bar</p>")
	if err != nil {
		t.Fatal(err.Error())
	}
	p2 := dom.ChildAt(host, 1)
	foo := dom.FindText(host, "foo")
	c := FromBoundary(Before(p2))
	if c.Node() != p2 || c.AtEnd() {
		t.Errorf("expected cursor at (host,1) to face the second <p>")
	}
	c = FromBoundary(End(host))
	if c.Node() != nil || !c.AtEnd() || c.Parent() != host {
		t.Errorf("expected cursor at (host,2) to sit at host's end")
	}
	c = FromBoundary(Boundary{Container: foo, Offset: 2})
	if c.Node() != foo || c.AtEnd() {
		t.Errorf("expected in-run cursor to face its text run")
	}
	c = FromBoundary(End(foo))
	if !c.AtEnd() || c.Parent() != foo {
		t.Errorf("expected cursor at end of run to sit at the run's end")
	}
	// cursor construction is deterministic, equality is reflexive
	for _, b := range []Boundary{Before(p2), End(host), {Container: foo, Offset: 2}} {
		if !FromBoundary(b).Equals(FromBoundary(b)) {
			t.Errorf("expected cursors from %v to be equal", b)
		}
	}
}

func TestCursorBoundaryRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := dom.FromHTML("<p>foo</p><p>bar</p>")
	if err != nil {
		t.Fatal(err.Error())
	}
	p2 := dom.ChildAt(host, 1)
	foo := dom.FindText(host, "foo")
	// element boundaries and in-run boundaries survive the round trip
	for _, b := range []Boundary{
		Before(p2),
		End(host),
		{Container: foo, Offset: 2},
		End(foo),
	} {
		if rt := FromBoundary(b).Boundary(); !rt.Equals(b) {
			t.Errorf("round trip of %v yields %v", b, rt)
		}
	}
	// a run's offset 0 normalizes to the element slot in front of the run
	if rt := FromBoundary(Start(foo)).Boundary(); !rt.Equals(Before(foo)) {
		t.Errorf("expected offset 0 of a run to normalize to %v, is %v", Before(foo), rt)
	}
}

func TestCursorInRunOffsetIsTransient(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	host, err := dom.FromHTML("<p>foo</p><p>bar</p>")
	if err != nil {
		t.Fatal(err.Error())
	}
	foo := dom.FindText(host, "foo")
	inRun := FromBoundary(Boundary{Container: foo, Offset: 2})
	atSlot := FromBoundary(Before(foo))
	if inRun.Equals(atSlot) {
		t.Errorf("expected in-run cursor to differ from slot cursor")
	}
	if !inRun.samePlace(atSlot) {
		t.Errorf("expected both cursors to occupy the same tree place")
	}
	// any movement forgets the in-run offset
	if !inRun.Next() || !inRun.Prev() {
		t.Fatalf("cursor failed to move inside the fixture")
	}
	if b := inRun.Boundary(); !b.Equals(Before(foo)) {
		t.Errorf("expected moved cursor to be at %v, is %v", Before(foo), b)
	}
}
