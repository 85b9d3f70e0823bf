package entropywatch

import (
	"encoding/json"
	"strings"
	"time"
)

// Freshness tells whether the entropy source currently advertises a key.
type Freshness int

const (
	Absent Freshness = iota
	Present
)

func (f Freshness) String() string {
	if f == Present {
		return "present"
	}
	return "absent"
}

// MarshalText encodes the freshness as its lowercase name.
func (f Freshness) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Reading is the raw payload returned by the entropy source. Both fields may
// be missing or null.
type Reading struct {
	Key       *string `json:"entropy_key"`
	Timestamp *string `json:"timestamp"`
}

// State is the last accepted view of the entropy source.
type State struct {
	Key        string
	Timestamp  time.Time // zero when the source gave none or it was unreadable
	ObservedAt time.Time // when the reading was accepted
}

type stateJSON struct {
	Key        string     `json:"entropy_key"`
	Timestamp  *time.Time `json:"timestamp"`
	ObservedAt *time.Time `json:"observed_at"`
	Freshness  Freshness  `json:"freshness"`
}

// MarshalJSON renders missing times as null and includes the derived
// freshness.
func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		Key:       s.Key,
		Freshness: s.Freshness(),
	}
	if s.HasTimestamp() {
		out.Timestamp = &s.Timestamp
	}
	if !s.ObservedAt.IsZero() {
		out.ObservedAt = &s.ObservedAt
	}

	return json.Marshal(out)
}

// Freshness is derived from Key, so a key and a freshness flag can never
// disagree.
func (s State) Freshness() Freshness {
	if s.Key == "" {
		return Absent
	}
	return Present
}

// HasTimestamp reports whether the source supplied a usable timestamp.
func (s State) HasTimestamp() bool {
	return !s.Timestamp.IsZero()
}

// timestampLayouts are tried in order. The second one is what Python's
// str(datetime) produces.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999",
}

// parseTimestamp returns the zero time for anything it cannot read.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC()
		}
	}

	return time.Time{}
}

// stateFromReading normalizes a reading. A missing key yields the absent state.
func stateFromReading(r Reading, observedAt time.Time) State {
	s := State{ObservedAt: observedAt}
	if r.Key != nil {
		s.Key = *r.Key
	}
	if r.Timestamp != nil {
		s.Timestamp = parseTimestamp(*r.Timestamp)
	}
	return s
}
