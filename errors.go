package geomesh

import (
	"errors"
	"fmt"

	"github.com/desertwitch/geomesh/record"
)

var (
	// ErrMalformedDocument is an error that occurs when the input text is not
	// a structurally valid configuration document.
	ErrMalformedDocument = record.ErrMalformedDocument

	// ErrBrokenReference is an error that occurs when a cross-reference
	// identifier does not resolve to an existing record.
	ErrBrokenReference = errors.New("reference does not resolve")

	// ErrSelfLoop is an error that occurs when a geom's own consumer attaches
	// to one of that same geom's providers. The kernel never encodes this; it
	// is treated as a referential-integrity violation, not a topology.
	ErrSelfLoop = errors.New("consumer attaches to its own geom's provider")

	// ErrDuplicateIdentifier is an error that occurs when two records of the
	// same kind share one identifier within a single snapshot.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrModeMismatch is an error that occurs when an attached consumer's
	// access mode disagrees with its provider's while the consumer holds
	// references of its own (idle r0w0e0 attachments are exempt, as used by
	// device-node consumers).
	ErrModeMismatch = errors.New("consumer and provider access modes disagree")

	// ErrUnknownIdentifier is an error that occurs when a query names an
	// identifier that does not exist in the graph. It is local to the failing
	// call; the graph itself stays valid.
	ErrUnknownIdentifier = errors.New("unknown identifier")
)

// ReferenceError is an error that occurs when the graph builder cannot
// establish referential integrity for a snapshot. The whole snapshot is
// rejected; no partial graph is produced.
type ReferenceError struct {
	// Kind is the record kind holding the offending reference.
	Kind string

	// Field is the reference field that failed.
	Field string

	// ID is the identifier that could not be honored.
	ID uint64

	// Err is the underlying cause ([ErrBrokenReference], [ErrSelfLoop] or
	// [ErrDuplicateIdentifier]).
	Err error
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s record: field %q: %v: %#x", e.Kind, e.Field, e.Err, e.ID)
}

// Unwrap returns the underlying cause.
func (e *ReferenceError) Unwrap() error {
	return e.Err
}
