package record

import (
	"fmt"
	"strconv"
)

// fieldError carries the name of the config field that failed to decode, so
// the decoder can surface it inside a [*DecodeError]. It wraps either
// [ErrFieldMissing] or [ErrFieldInvalid].
type fieldError struct {
	name string
	err  error
}

// Error implements the error interface.
func (e *fieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.name, e.err)
}

// Unwrap returns the underlying cause.
func (e *fieldError) Unwrap() error {
	return e.err
}

// lookup returns the raw value of the named field and whether it is present.
func lookup(fields []Field, name string) (string, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field.Value, true
		}
	}

	return "", false
}

// optionalString returns the named field's raw value, or empty when absent.
func optionalString(fields []Field, name string) string {
	value, _ := lookup(fields, name)

	return value
}

// requireString returns the named field's raw value, failing when absent.
func requireString(fields []Field, name string) (string, error) {
	value, exists := lookup(fields, name)
	if !exists {
		return "", &fieldError{name: name, err: ErrFieldMissing}
	}

	return value, nil
}

// requireUint returns the named field parsed as an unsigned integer, failing
// when absent or unparsable.
func requireUint(fields []Field, name string) (uint64, error) {
	raw, err := requireString(fields, name)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &fieldError{name: name, err: fmt.Errorf("%w: %q", ErrFieldInvalid, raw)}
	}

	return value, nil
}

// requireBool returns the named field parsed as a boolean, failing when
// absent or unparsable.
func requireBool(fields []Field, name string) (bool, error) {
	raw, err := requireString(fields, name)
	if err != nil {
		return false, err
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &fieldError{name: name, err: fmt.Errorf("%w: %q", ErrFieldInvalid, raw)}
	}

	return value, nil
}

// parseUintText parses raw element text as an unsigned integer.
func parseUintText(raw string) (uint64, error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFieldInvalid, raw)
	}

	return value, nil
}

// parseHandle parses a kernel pointer handle (hex with 0x prefix, as emitted
// by the kernel) into its numeric form.
func parseHandle(raw string) (uint64, error) {
	value, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFieldInvalid, raw)
	}

	return value, nil
}
