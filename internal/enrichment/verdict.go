package enrichment

import (
	"errors"
	"fmt"
)

// ErrInvalidVerdict is returned when decoding an unknown verdict name.
var ErrInvalidVerdict = errors.New("invalid verdict")

// Verdict is the outcome of a single check on a transaction. The zero value
// means the check has not been settled yet.
type Verdict int

const (
	Unknown Verdict = iota
	Valid
	Invalid
)

// VerdictOf maps a boolean check result to Valid or Invalid.
func VerdictOf(ok bool) Verdict {
	if ok {
		return Valid
	}
	return Invalid
}

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Verdict) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "unknown":
		*v = Unknown
	case "valid":
		*v = Valid
	case "invalid":
		*v = Invalid
	default:
		return fmt.Errorf("%w: %q", ErrInvalidVerdict, text)
	}
	return nil
}
