package caret

// Selector is the sink the engine hands adjusted ranges to. Visual
// highlighting (or whatever else a host does with a selection) is entirely
// the implementation's business; the engine only produces boundary pairs.
type Selector interface {
	Select(rng Range) error
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(Range) error

// Select calls f(rng).
func (f SelectorFunc) Select(rng Range) error {
	return f(rng)
}
