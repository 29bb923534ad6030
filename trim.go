package caret

// Trim contracts a range so it no longer includes ignorable content at its
// ends: the start boundary seeks forward past positions where ignoreLeft
// holds, then the end boundary seeks backward past positions where
// ignoreRight holds. Nil predicates never ignore, making Trim a no-op.
//
// A collapsed range is returned unchanged regardless of predicates. All
// four boundary components are captured before any adjustment, so the
// second seek runs against the start boundary as adjusted by the first.
// Absence of change is communicated by returning a range equal to the
// input, never by an error.
func Trim(rng Range, ignoreLeft, ignoreRight CursorCond) (Range, error) {
	if err := rng.Validate(); err != nil {
		return rng, err
	}
	if rng.IsCollapsed() {
		return rng, nil
	}
	ignoreLeft = orFalse(ignoreLeft)
	ignoreRight = orFalse(ignoreRight)
	start, end := rng.Start, rng.End
	seekBoundary(&rng, start, end, setStart, ignoreLeft, forward)
	start = rng.Start
	seekBoundary(&rng, rng.End, start, setEnd, ignoreRight, backward)
	return rng, nil
}

// TrimClosingOpening trims like Trim, but its built-in predicates
// additionally skip closing positions on the left (cursor at the end of a
// container, about to leave it) and opening positions on the right (no
// previous sibling, about to enter a container from its very start). This
// keeps the trimmed boundaries from sitting at a tag boundary rather than
// at real content.
func TrimClosingOpening(rng Range, ignoreLeft, ignoreRight CursorCond) (Range, error) {
	ignoreLeft = orFalse(ignoreLeft)
	ignoreRight = orFalse(ignoreRight)
	return Trim(rng,
		func(c Cursor) bool {
			return c.AtEnd() || ignoreLeft(c)
		},
		func(c Cursor) bool {
			return c.PrevSibling() == nil || ignoreRight(c)
		})
}

// TrimBoundaries walks a cursor pair toward each other, collapsing the pair
// inward past ignorable edge content: each cursor keeps stepping while the
// node it is about to cross satisfies ignore, or, when it sits at a
// container edge, while until does not fire for the container. The walk
// stops the moment the two cursors coincide.
//
// A nil ignore never ignores and a nil until always fires, which together
// make TrimBoundaries a no-op.
func TrimBoundaries(start, end *Cursor, until, ignore NodeCond) {
	until = orTrueNode(until)
	ignore = orFalseNode(ignore)
	start.NextWhile(func(c Cursor) bool {
		if c.samePlace(*end) {
			return false
		}
		if next := c.Node(); next != nil {
			return ignore(next)
		}
		return !until(c.Parent())
	})
	end.PrevWhile(func(c Cursor) bool {
		if c.samePlace(*start) {
			return false
		}
		if prev := c.PrevSibling(); prev != nil {
			return ignore(prev)
		}
		return !until(c.Parent())
	})
}
