package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MovementStatus is the lifecycle label of a movement. The three known values
// form a closed set; any other value is kept verbatim and treated as unknown.
type MovementStatus string

const (
	StatusCreated           MovementStatus = "created"
	StatusInTransit         MovementStatus = "em transito"
	StatusDeliveryConfirmed MovementStatus = "coleta finalizada"
)

type Transition string

const (
	TransitionStart Transition = "start"
	TransitionEnd   Transition = "end"
)

var ErrInvalidTransition = errors.New("invalid movement transition")

var transitions = map[MovementStatus]map[Transition]MovementStatus{
	StatusCreated:   {TransitionStart: StatusInTransit},
	StatusInTransit: {TransitionEnd: StatusDeliveryConfirmed},
}

var known = map[MovementStatus]struct{}{
	StatusCreated:           {},
	StatusInTransit:         {},
	StatusDeliveryConfirmed: {},
}

// NewMovementStatus maps a backend label onto the known set, ignoring case,
// diacritics and redundant whitespace ("Em Trânsito" is StatusInTransit).
func NewMovementStatus(value string) MovementStatus {
	candidate := MovementStatus(fold(value))
	if _, ok := known[candidate]; ok {
		return candidate
	}

	return MovementStatus(strings.TrimSpace(value))
}

func (s MovementStatus) IsKnown() bool {
	_, ok := known[s]
	return ok
}

// Apply returns the status reached by performing t, or ErrInvalidTransition.
func (s MovementStatus) Apply(t Transition) (MovementStatus, error) {
	next, ok := transitions[s][t]
	if !ok {
		return s, fmt.Errorf("%w: %s from %q", ErrInvalidTransition, t, string(s))
	}
	return next, nil
}

func (s MovementStatus) CanApply(t Transition) bool {
	_, ok := transitions[s][t]
	return ok
}

// AllowedTransitions lists the actions a view may offer for this status.
func (s MovementStatus) AllowedTransitions() []Transition {
	var allowed []Transition
	for _, t := range []Transition{TransitionStart, TransitionEnd} {
		if s.CanApply(t) {
			allowed = append(allowed, t)
		}
	}
	return allowed
}

// HasRoute reports whether the movement has left its origin, so a map of the
// route is meaningful.
func (s MovementStatus) HasRoute() bool {
	return s == StatusInTransit || s == StatusDeliveryConfirmed
}

func (s MovementStatus) String() string {
	return string(s)
}

// UnmarshalJSON reads null as the empty, unknown status.
func (s *MovementStatus) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode movement status: %w", err)
	}
	*s = NewMovementStatus(raw)
	return nil
}

func fold(value string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, value)
	if err != nil {
		stripped = value
	}
	return strings.ToLower(strings.Join(strings.Fields(stripped), " "))
}
