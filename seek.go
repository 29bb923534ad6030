package caret

import (
	"github.com/npillmayer/caret/dom"
	"golang.org/x/net/html"
)

// CursorCond is a predicate over cursor positions, used to tell the walking
// algorithms which positions to ignore (walk past) or where to stop.
type CursorCond func(Cursor) bool

// NodeCond is a predicate over tree nodes.
type NodeCond func(*html.Node) bool

func returnFalse(Cursor) bool { return false }

func orFalse(cond CursorCond) CursorCond {
	if cond == nil {
		return returnFalse
	}
	return cond
}

func orFalseNode(cond NodeCond) NodeCond {
	if cond == nil {
		return func(*html.Node) bool { return false }
	}
	return cond
}

// orTrueNode is the default for until-predicates: a nil until always fires,
// so walks never leave their container by default.
func orTrueNode(cond NodeCond) NodeCond {
	if cond == nil {
		return func(*html.Node) bool { return true }
	}
	return cond
}

type direction int

const (
	forward direction = iota
	backward
)

// samePlace compares two cursors as tree positions, disregarding the
// transient in-run offset. A walking cursor treats text runs as atomic
// units and therefore can never coincide exactly with a cursor built
// strictly inside a run; facing the same run counts as having reached it.
func (c Cursor) samePlace(other Cursor) bool {
	return c.node == other.node && c.atEnd == other.atEnd
}

// seekBoundary advances a cursor from boundary b toward the opposite
// boundary, in the given direction, while ignore holds. It stops as soon as
// the cursors coincide, ignore returns false, or no further step exists. If
// any step was taken, the final position is written into rng through set;
// otherwise rng stays untouched.
//
// Seeking backward from a boundary strictly inside a text run first probes
// one step forward, so the run is judged as one unit from the side away
// from the boundary. The probe never counts as movement, and it is skipped
// entirely when the opposite boundary sits at the same run.
func seekBoundary(rng *Range, b, opposite Boundary, set func(*Range, Cursor),
	ignore CursorCond, dir direction) {
	//
	cursor := FromBoundary(b)
	oppositeCursor := FromBoundary(opposite)
	// No probe when the opposite cursor sits at the same run: jumping to
	// the run's far side would overshoot the bound of the walk.
	if dir == backward && dom.IsText(b.Container) &&
		b.Offset > 0 && b.Offset < dom.NodeLength(b.Container) &&
		!cursor.samePlace(oppositeCursor) {
		probe := cursor
		if probe.Next() {
			if !ignore(probe) {
				return
			}
			// The run is ignorable as a whole; continue from its far side
			// so the walk crosses it as one counted step.
			cursor = probe
		}
	}
	moved := false
	for !cursor.samePlace(oppositeCursor) && ignore(cursor) {
		var stepped bool
		if dir == backward {
			stepped = cursor.Prev()
		} else {
			stepped = cursor.Next()
		}
		if !stepped {
			break
		}
		moved = true
	}
	if moved {
		T().Debugf("caret: seek moved boundary to %v", cursor)
		set(rng, cursor)
	}
}

func setStart(rng *Range, cursor Cursor) {
	rng.Start = cursor.Boundary()
}

func setEnd(rng *Range, cursor Cursor) {
	rng.End = cursor.Boundary()
}

// SeekStart advances the start boundary of rng forward toward the end
// boundary while ignore holds, stopping at the first non-ignored position
// or at the end boundary. A nil predicate makes SeekStart a no-op.
//
// The walk is greedy, single-pass and monotonic: it never backtracks past a
// position once advanced, and it terminates because every step strictly
// advances the tree position and the opposite boundary bounds the walk.
func SeekStart(rng Range, ignore CursorCond) (Range, error) {
	if err := rng.Validate(); err != nil {
		return rng, err
	}
	seekBoundary(&rng, rng.Start, rng.End, setStart, orFalse(ignore), forward)
	return rng, nil
}

// SeekEnd walks the end boundary of rng backward toward the start boundary
// while ignore holds, symmetric to SeekStart.
func SeekEnd(rng Range, ignore CursorCond) (Range, error) {
	if err := rng.Validate(); err != nil {
		return rng, err
	}
	seekBoundary(&rng, rng.End, rng.Start, setEnd, orFalse(ignore), backward)
	return rng, nil
}
