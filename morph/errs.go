package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrContract marks a violation of the wrapper tree's internal contract:
	// a kind mismatch at rebind time, a child pairing that does not line up,
	// use of a forgotten node. These are defect signals, not recoverable
	// conditions; callers should let them propagate and rebuild the wrapper
	// tree from scratch (see Document.Refresh).
	ErrContract = errors.New("wrapper tree contract violation")

	// ErrUnsupportedKind is returned when no facade type exists for a syntax
	// kind. Callers may recover by skipping the subtree.
	ErrUnsupportedKind = errors.New("unsupported syntax kind")

	// ErrForgotten is returned on use of a node that was forgotten.
	ErrForgotten = fmt.Errorf("%w: node was forgotten", ErrContract)
)
