package dom

import "errors"

var (
	// ErrDetachedNode signals an operation on a node without a parent.
	ErrDetachedNode = errors.New("dom: node is not attached to a tree")
	// ErrHostRemoval signals an attempt to remove an editing host.
	ErrHostRemoval = errors.New("dom: refusing to remove an editing host")
	// ErrNoFragment signals HTML input that did not produce any nodes.
	ErrNoFragment = errors.New("dom: input contains no parseable fragment")
)
