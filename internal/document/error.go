package document

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is an error that occurs when the input text is not a
	// structurally valid, self-contained document.
	ErrMalformed = errors.New("malformed document")

	// ErrMultipleRoots is an error that occurs when the input text contains
	// more than one top-level element. It wraps [ErrMalformed].
	ErrMultipleRoots = fmt.Errorf("%w: multiple root elements", ErrMalformed)
)
