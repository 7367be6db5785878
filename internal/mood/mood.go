// Package mood tracks the session's frustration and momentum counters.
package mood

import "time"

// Bounds for both counters.
const (
	minLevel = 0
	maxLevel = 10
)

// decayDelay is how long after the last error frustration starts decaying.
const decayDelay = 5 * time.Minute

// State holds the two bounded mood counters and the timestamp of the most
// recent error. Counters stay within [0, 10].
type State struct {
	FrustrationLevel int    `json:"frustration_level"`
	Momentum         int    `json:"momentum"`
	LastErrorTime    *int64 `json:"last_error_time"` // unix seconds, nil until the first error
}

// Update applies one event to the mood. An error bumps frustration by two,
// zeroes momentum, and stamps the error time. A success bumps momentum by
// one and lets frustration decay by one, but only once the error is more
// than five minutes old (or never happened).
func (s *State) Update(hadError bool, now time.Time) {
	if hadError {
		s.FrustrationLevel = clamp(s.FrustrationLevel + 2)
		s.Momentum = 0
		ts := now.Unix()
		s.LastErrorTime = &ts
		return
	}

	if s.LastErrorTime == nil || now.Sub(time.Unix(*s.LastErrorTime, 0)) > decayDelay {
		s.FrustrationLevel = clamp(s.FrustrationLevel - 1)
	}
	s.Momentum = clamp(s.Momentum + 1)
}

// Modifier is the coarse mood classification consumed by the alternate
// personality lookup. It is intentionally independent of the error_count
// threshold gate in the selector: frustration here is ambient and
// time-decayed, not reset by prompt submission.
type Modifier int

const (
	Normal Modifier = iota
	Frustrated
	InTheZone
)

// Modifier derives the coarse classification from the current counters.
// Frustration wins over momentum when both are high.
func (s *State) Modifier() Modifier {
	switch {
	case s.FrustrationLevel >= 6:
		return Frustrated
	case s.Momentum >= 8:
		return InTheZone
	default:
		return Normal
	}
}

func clamp(v int) int {
	if v < minLevel {
		return minLevel
	}
	if v > maxLevel {
		return maxLevel
	}
	return v
}
