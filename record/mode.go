package record

import "fmt"

// Mode holds the kernel's internal access reference counts for a provider or
// consumer, parsed from the "rNwNeN" wire form.
type Mode struct {
	Read      uint16
	Write     uint16
	Exclusive uint16
}

// ParseMode parses an access mode string of the form "r1w1e3".
func ParseMode(raw string) (Mode, error) {
	var mode Mode

	matched, err := fmt.Sscanf(raw, "r%dw%de%d", &mode.Read, &mode.Write, &mode.Exclusive)
	if err != nil || matched != 3 {
		return Mode{}, fmt.Errorf("%w: access mode %q", ErrFieldInvalid, raw)
	}

	return mode, nil
}

// String renders the mode back into its wire form.
func (m Mode) String() string {
	return fmt.Sprintf("r%dw%de%d", m.Read, m.Write, m.Exclusive)
}

// IsIdle reports whether the mode holds no access references at all (r0w0e0),
// the mode device-node consumers attach with.
func (m Mode) IsIdle() bool {
	return m == Mode{}
}
