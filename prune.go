package caret

import (
	"fmt"

	"github.com/npillmayer/caret/dom"
	"golang.org/x/net/html"
)

// IgnoreAhead lifts a node classifier into a cursor predicate that judges
// the content in front of a position: the faced node, or the surrounding
// container when nothing is left to face. This is the natural shape for a
// left-hand (forward-seeking) ignore predicate.
func IgnoreAhead(cond NodeCond) CursorCond {
	cond = orFalseNode(cond)
	return func(c Cursor) bool {
		if n := c.Node(); n != nil {
			return cond(n)
		}
		return cond(c.Parent())
	}
}

// IgnoreBehind lifts a node classifier into a cursor predicate that judges
// the content behind a position: the previous sibling, or the surrounding
// container at a container's start. This is the natural shape for a
// right-hand (backward-seeking) ignore predicate.
func IgnoreBehind(cond NodeCond) CursorCond {
	cond = orFalseNode(cond)
	return func(c Cursor) bool {
		if prev := c.PrevSibling(); prev != nil {
			return cond(prev)
		}
		return cond(c.Parent())
	}
}

// PlanPrune computes, without touching the tree, the nodes a prune pass
// would remove from rng: nodes strictly between the two boundaries that the
// significance collaborator classifies as unrendered. A node containing
// (or being) either boundary's container is never part of the plan. A nil
// sig falls back to dom.DefaultSignificance.
func PlanPrune(rng Range, sig dom.Significance) []*html.Node {
	return planPrune(rng, Range{}, sig)
}

// planPrune walks rng and collects unrendered nodes, protecting the
// boundary containers of both rng and protected, as well as the nodes the
// protected boundaries sit directly in front of.
func planPrune(rng, protected Range, sig dom.Significance) []*html.Node {
	if rng.Validate() != nil || rng.IsCollapsed() {
		return nil
	}
	if sig == nil {
		sig = dom.DefaultSignificance{}
	}
	cursor := FromBoundary(rng.Start)
	endCursor := FromBoundary(rng.End)
	anchorStart := FromBoundary(protected.Start).Node()
	anchorEnd := FromBoundary(protected.End).Node()
	var plan []*html.Node
	for !cursor.samePlace(endCursor) {
		n := cursor.Node()
		if n != nil && n.Parent != nil && sig.IsUnrendered(n) &&
			n != anchorStart && n != anchorEnd &&
			!touchesBoundary(n, rng) && !touchesBoundary(n, protected) {
			plan = append(plan, n)
			// hop over the planned node instead of descending into it
			cursor = FromBoundary(After(n))
			continue
		}
		if !cursor.Next() {
			break
		}
	}
	return plan
}

func touchesBoundary(n *html.Node, rng Range) bool {
	return n == rng.Start.Container || n == rng.End.Container ||
		dom.Contains(n, rng.Start.Container) || dom.Contains(n, rng.End.Container)
}

// TrimUnrendered contracts a range past unrendered content and removes the
// unrendered nodes strictly between the original boundaries. This is the
// engine's one tree mutation, run in two phases: a pure planning phase
// (see PlanPrune) followed by an apply phase going through dom.Remove. The
// trimmed boundaries are re-derived after the apply phase, so removals of
// preceding siblings cannot leave them pointing at stale child slots.
//
// The removed nodes are returned for audit. If the tree rejects a removal,
// TrimUnrendered stops with ErrMutationRejected: removals and boundary
// adjustments already applied are kept, and the returned slice reflects
// the partial progress.
func TrimUnrendered(rng Range, sig dom.Significance) (Range, []*html.Node, error) {
	if sig == nil {
		sig = dom.DefaultSignificance{}
	}
	trimmed, err := Trim(rng, IgnoreAhead(sig.IsUnrendered), IgnoreBehind(sig.IsUnrendered))
	if err != nil {
		return rng, nil, err
	}
	plan := planPrune(rng, trimmed, sig)
	// Anchor the trimmed boundaries on nodes, not child slots, across the
	// apply phase.
	start := FromBoundary(trimmed.Start)
	end := FromBoundary(trimmed.End)
	removed := make([]*html.Node, 0, len(plan))
	for _, n := range plan {
		if e := dom.Remove(n); e != nil {
			T().Errorf("caret: prune aborted: %v", e)
			trimmed = NewRange(start.Boundary(), end.Boundary())
			return trimmed, removed, fmt.Errorf("%w: %v", ErrMutationRejected, e)
		}
		removed = append(removed, n)
	}
	if len(removed) > 0 {
		T().Debugf("caret: pruned %d unrendered node(s)", len(removed))
		trimmed = NewRange(start.Boundary(), end.Boundary())
	}
	return trimmed, removed, nil
}
