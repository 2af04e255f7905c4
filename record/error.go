package record

import (
	"errors"
	"fmt"

	"github.com/desertwitch/geomesh/internal/document"
)

var (
	// ErrMalformedDocument is an error that occurs when the input text is not
	// a structurally valid configuration document. The whole snapshot is
	// rejected; there is no partial result.
	ErrMalformedDocument = document.ErrMalformed

	// ErrFieldMissing is an error that occurs when a record lacks a field its
	// class schema requires.
	ErrFieldMissing = errors.New("required field missing")

	// ErrFieldInvalid is an error that occurs when a required field is
	// present but cannot be parsed into its schema type.
	ErrFieldInvalid = errors.New("field value invalid")
)

// DecodeError is an error that occurs when a single record cannot be decoded
// against its class schema. One such record aborts the whole snapshot: a
// partial record set is more dangerous than none for a topology inspector.
type DecodeError struct {
	// Kind is the record kind ("class", "geom", "provider", "consumer").
	Kind string

	// ID is the raw identifier text of the failing record; it stays empty
	// when the identifier itself could not be read.
	ID string

	// Field is the name of the field that failed to decode.
	Field string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	msg := "failed decoding " + e.Kind + " record"
	if e.ID != "" {
		msg += " " + e.ID
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}

	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
