package caret

import (
	"github.com/npillmayer/caret/dom"
)

// EnvelopeInvisibleCharacters extends the end boundary of a range across a
// trailing run of characters the significance collaborator classifies as
// insignificant, up to the next rendered character or the end of the text
// run. The start boundary is never touched: a boundary cannot sit
// immediately in front of an invisible character by construction, so only
// the end can leave one out.
//
// A nil sig falls back to dom.DefaultSignificance.
func EnvelopeInvisibleCharacters(rng Range, sig dom.Significance) (Range, error) {
	if err := rng.Validate(); err != nil {
		return rng, err
	}
	if sig == nil {
		sig = dom.DefaultSignificance{}
	}
	if dom.IsText(rng.End.Container) {
		if off, ok := sig.NextSignificantOffset(rng.End.Container, rng.End.Offset); ok {
			rng.End.Offset = off
		} else {
			rng.End.Offset = dom.NodeLength(rng.End.Container)
		}
	}
	return rng, nil
}
