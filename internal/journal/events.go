package journal

import (
	"fmt"
	"time"
)

// Event is one journaled hook event.
type Event struct {
	ID          int64
	SessionID   string
	Tool        string
	Activity    string
	Job         string
	Personality string
	HadError    bool
	RecordedAt  time.Time
}

// Insert appends one event to the journal.
func (db *DB) Insert(ev Event) error {
	var job any
	if ev.Job != "" {
		job = ev.Job
	}
	_, err := db.conn.Exec(`
		INSERT INTO events (session_id, tool, activity, job, personality, had_error, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Tool, ev.Activity, job, ev.Personality, ev.HadError,
		ev.RecordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// SessionSummary aggregates a session's journaled events.
type SessionSummary struct {
	SessionID       string
	Events          int
	Errors          int
	TopActivity     string
	LastPersonality string
	LastSeen        string
}

// Summaries returns per-session aggregates, most recently active first.
// When sessionID is non-empty only that session is reported.
func (db *DB) Summaries(sessionID string) ([]SessionSummary, error) {
	query := `
		SELECT e.session_id,
		       COUNT(*),
		       SUM(e.had_error),
		       (SELECT activity FROM events a
		        WHERE a.session_id = e.session_id
		        GROUP BY activity ORDER BY COUNT(*) DESC, activity LIMIT 1),
		       (SELECT personality FROM events p
		        WHERE p.session_id = e.session_id
		        ORDER BY p.id DESC LIMIT 1),
		       MAX(e.recorded_at)
		FROM events e`
	args := []any{}
	if sessionID != "" {
		query += " WHERE e.session_id = ?"
		args = append(args, sessionID)
	}
	query += " GROUP BY e.session_id ORDER BY MAX(e.recorded_at) DESC"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying session summaries: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.SessionID, &s.Events, &s.Errors, &s.TopActivity, &s.LastPersonality, &s.LastSeen); err != nil {
			return nil, fmt.Errorf("scanning session summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ActivityCounts returns how often each activity was journaled for a
// session, most frequent first.
func (db *DB) ActivityCounts(sessionID string) (map[string]int, error) {
	rows, err := db.conn.Query(`
		SELECT activity, COUNT(*) FROM events
		WHERE session_id = ?
		GROUP BY activity`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying activity counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var act string
		var n int
		if err := rows.Scan(&act, &n); err != nil {
			return nil, fmt.Errorf("scanning activity count: %w", err)
		}
		counts[act] = n
	}
	return counts, rows.Err()
}
