package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moodware/persona/internal/activity"
)

// File name pieces. The full name is a pure function of the session id so
// that a hook process and a later statusline process resolve the same file.
const (
	statePrefix = "persona_activity_"
	stateSuffix = ".json"

	// legacyErrorSuffix names the sidecar count file older releases wrote.
	// Cleanup still removes it.
	legacyErrorPrefix = "persona_errors_"
	legacyErrorSuffix = ".count"
)

// Store reads and writes session state files under a single directory.
// There is no locking: concurrent invocations for the same session are
// last-writer-wins, but every write is whole-file (temp then rename) so
// readers never observe a torn document.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. An empty dir means the OS
// temporary directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Store{dir: dir}
}

// Dir returns the directory state files live in.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the state file path for a session id.
func (s *Store) Path(sessionID string) string {
	return filepath.Join(s.dir, statePrefix+sessionID+stateSuffix)
}

func (s *Store) legacyErrorPath(sessionID string) string {
	return filepath.Join(s.dir, legacyErrorPrefix+sessionID+legacyErrorSuffix)
}

// Load reads the state for sessionID, or returns the bootstrap default if
// no file exists yet. An unreadable or unparsable file is an error, not a
// silent reset: corruption is surfaced to the caller.
func (s *Store) Load(sessionID string) (*SessionState, error) {
	path := s.Path(sessionID)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session state %s: %w", path, err)
	}

	var st SessionState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing session state %s: %w", path, err)
	}
	return &st, nil
}

// Save serializes the complete state and replaces the state file. The
// write goes to a temp file in the same directory and is renamed over the
// target so a racing reader sees either the old or the new document.
func (s *Store) Save(st *SessionState) error {
	path := s.Path(st.SessionID)

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing session state for %s: %w", st.SessionID, err)
	}

	tmp, err := os.CreateTemp(s.dir, statePrefix+"*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp state file in %s: %w", s.dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing session state %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing session state %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving session state to %s: %w", path, err)
	}
	return nil
}

// UpdateActivity applies one successful tool event: it recomputes the
// consecutive-action streak, records a personality change, runs the mood
// success path, and persists.
func (s *Store) UpdateActivity(st *SessionState, act activity.Activity, job, pers string, now time.Time) error {
	if st.Activity == act {
		st.ConsecutiveActions++
	} else {
		st.ConsecutiveActions = 1
	}

	if st.Personality != pers {
		prev := st.Personality
		st.PreviousPersonality = &prev
	}

	st.Activity = act
	if job == "" {
		st.CurrentJob = nil
	} else {
		st.CurrentJob = &job
	}
	st.Personality = pers

	st.Mood.Update(false, now)

	return s.Save(st)
}

// IncrementErrors bumps the error count, runs the mood error path, and
// persists.
func (s *Store) IncrementErrors(st *SessionState, now time.Time) error {
	st.ErrorCount++
	st.Mood.Update(true, now)
	return s.Save(st)
}

// ResetErrors zeroes the error count and persists. Called on prompt
// submission; the decayed mood counters are left alone.
func (s *Store) ResetErrors(st *SessionState) error {
	st.ErrorCount = 0
	return s.Save(st)
}

// Cleanup removes the session's state file and the legacy error sidecar.
// Missing files are not an error.
func (s *Store) Cleanup(sessionID string) error {
	_ = os.Remove(s.Path(sessionID))
	_ = os.Remove(s.legacyErrorPath(sessionID))
	return nil
}

// Sessions returns the ids of every session with a state file in the
// store directory.
func (s *Store) Sessions() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing state dir %s: %w", s.dir, err)
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, statePrefix) || !strings.HasSuffix(name, stateSuffix) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(name, statePrefix), stateSuffix)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
