// Package state persists per-session engine state across the short-lived
// processes the host starts for each hook event.
package state

import (
	"github.com/moodware/persona/internal/activity"
	"github.com/moodware/persona/internal/mood"
	"github.com/moodware/persona/internal/personality"
)

// SessionState is the complete per-session record. One exists per
// session_id for the duration of a host session; every hook event loads,
// mutates, and rewrites it whole.
type SessionState struct {
	SessionID           string            `json:"session_id"`
	Activity            activity.Activity `json:"activity"`
	CurrentJob          *string           `json:"current_job"`
	Personality         string            `json:"personality"`
	PreviousPersonality *string           `json:"previous_personality"`
	ConsecutiveActions  int               `json:"consecutive_actions"`
	ErrorCount          int               `json:"error_count"`
	Mood                mood.State        `json:"mood"`
}

// StreakAfter returns the consecutive-action count this event would have:
// one more of the same activity extends the streak, anything else restarts
// it. The selector needs this before the state is committed.
func (st *SessionState) StreakAfter(act activity.Activity) int {
	if st.Activity == act {
		return st.ConsecutiveActions + 1
	}
	return 1
}

// New returns the bootstrap state for a session seen for the first time.
func New(sessionID string) *SessionState {
	return &SessionState{
		SessionID:   sessionID,
		Activity:    activity.Idle,
		Personality: personality.BootingUp.String(),
	}
}
