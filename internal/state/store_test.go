package state

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodware/persona/internal/activity"
)

func TestLoadMissingReturnsBootstrap(t *testing.T) {
	store := NewStore(t.TempDir())

	st, err := store.Load("fresh-session")
	require.NoError(t, err)

	assert.Equal(t, "fresh-session", st.SessionID)
	assert.Equal(t, activity.Idle, st.Activity)
	assert.Equal(t, "( ˘ ³˘) Booting Up", st.Personality)
	assert.Nil(t, st.CurrentJob)
	assert.Zero(t, st.ErrorCount)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Unix(1_700_000_000, 0)

	st, err := store.Load("s1")
	require.NoError(t, err)
	require.NoError(t, store.UpdateActivity(st, activity.Coding, "main.go", "ʕ•ᴥ•ʔ Code Wizard", now))
	require.NoError(t, store.IncrementErrors(st, now))

	got, err := store.Load("s1")
	require.NoError(t, err)

	assert.Equal(t, st.Activity, got.Activity)
	require.NotNil(t, got.CurrentJob)
	assert.Equal(t, "main.go", *got.CurrentJob)
	assert.Equal(t, st.Personality, got.Personality)
	assert.Equal(t, 1, got.ErrorCount)
	assert.Equal(t, 2, got.Mood.FrustrationLevel)
	require.NotNil(t, got.Mood.LastErrorTime)
	assert.Equal(t, now.Unix(), *got.Mood.LastErrorTime)
}

func TestLoadCorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.WriteFile(store.Path("bad"), []byte("{not json"), 0o644))

	_, err := store.Load("bad")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing session state")
}

func TestUpdateActivityStreak(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Unix(1_700_000_000, 0)

	st, err := store.Load("s1")
	require.NoError(t, err)

	require.NoError(t, store.UpdateActivity(st, activity.Coding, "a.go", "p1", now))
	assert.Equal(t, 1, st.ConsecutiveActions)

	require.NoError(t, store.UpdateActivity(st, activity.Coding, "b.go", "p1", now))
	assert.Equal(t, 2, st.ConsecutiveActions)

	// A different activity restarts the streak.
	require.NoError(t, store.UpdateActivity(st, activity.Testing, "c_test.go", "p2", now))
	assert.Equal(t, 1, st.ConsecutiveActions)
}

func TestUpdateActivityRecordsPersonalityChange(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Unix(1_700_000_000, 0)

	st, err := store.Load("s1")
	require.NoError(t, err)
	require.NoError(t, store.UpdateActivity(st, activity.Coding, "a.go", "first", now))
	require.NoError(t, store.UpdateActivity(st, activity.Coding, "a.go", "second", now))

	require.NotNil(t, st.PreviousPersonality)
	assert.Equal(t, "first", *st.PreviousPersonality)
	assert.Equal(t, "second", st.Personality)
}

func TestStreakAfter(t *testing.T) {
	st := New("s1")
	st.Activity = activity.Coding
	st.ConsecutiveActions = 4

	assert.Equal(t, 5, st.StreakAfter(activity.Coding))
	assert.Equal(t, 1, st.StreakAfter(activity.Testing))
}

func TestResetErrors(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Unix(1_700_000_000, 0)

	st, err := store.Load("s1")
	require.NoError(t, err)
	require.NoError(t, store.IncrementErrors(st, now))
	require.NoError(t, store.IncrementErrors(st, now))
	require.NoError(t, store.ResetErrors(st))

	got, err := store.Load("s1")
	require.NoError(t, err)
	assert.Zero(t, got.ErrorCount)
	// The decayed mood counters survive the reset.
	assert.Equal(t, 4, got.Mood.FrustrationLevel)
}

func TestCleanupThenLoadBootstraps(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Unix(1_700_000_000, 0)

	st, err := store.Load("s1")
	require.NoError(t, err)
	require.NoError(t, store.UpdateActivity(st, activity.Coding, "a.go", "p", now))

	require.NoError(t, store.Cleanup("s1"))
	// Cleaning up a session that has no files is fine too.
	require.NoError(t, store.Cleanup("s1"))

	got, err := store.Load("s1")
	require.NoError(t, err)
	assert.Equal(t, activity.Idle, got.Activity)
	assert.Zero(t, got.ConsecutiveActions)
}

func TestSessions(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Unix(1_700_000_000, 0)

	for _, id := range []string{"a", "b"} {
		st, err := store.Load(id)
		require.NoError(t, err)
		require.NoError(t, store.UpdateActivity(st, activity.Coding, "x.go", "p", now))
	}

	ids, err := store.Sessions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestPathIsDeterministic(t *testing.T) {
	store := NewStore("/tmp")
	assert.Equal(t, store.Path("abc"), store.Path("abc"))
	assert.Equal(t, "/tmp/persona_activity_abc.json", store.Path("abc"))
}
