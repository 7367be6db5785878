package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndSummaries(t *testing.T) {
	db := testDB(t)
	base := time.Unix(1_700_000_000, 0)

	events := []Event{
		{SessionID: "s1", Tool: "Edit", Activity: "coding", Job: "main.go", Personality: "p1", RecordedAt: base},
		{SessionID: "s1", Tool: "Edit", Activity: "coding", Job: "main.go", Personality: "p2", RecordedAt: base.Add(time.Minute)},
		{SessionID: "s1", Tool: "Bash", Activity: "testing", Personality: "p3", HadError: true, RecordedAt: base.Add(2 * time.Minute)},
		{SessionID: "s2", Tool: "Read", Activity: "reading", Job: "a.go", Personality: "p4", RecordedAt: base.Add(3 * time.Minute)},
	}
	for _, ev := range events {
		require.NoError(t, db.Insert(ev))
	}

	summaries, err := db.Summaries("")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Most recently active first.
	assert.Equal(t, "s2", summaries[0].SessionID)

	s1 := summaries[1]
	assert.Equal(t, "s1", s1.SessionID)
	assert.Equal(t, 3, s1.Events)
	assert.Equal(t, 1, s1.Errors)
	assert.Equal(t, "coding", s1.TopActivity)
	assert.Equal(t, "p3", s1.LastPersonality)
}

func TestSummariesFiltered(t *testing.T) {
	db := testDB(t)
	base := time.Unix(1_700_000_000, 0)

	require.NoError(t, db.Insert(Event{SessionID: "s1", Tool: "Edit", Activity: "coding", Personality: "p", RecordedAt: base}))
	require.NoError(t, db.Insert(Event{SessionID: "s2", Tool: "Edit", Activity: "coding", Personality: "p", RecordedAt: base}))

	summaries, err := db.Summaries("s1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "s1", summaries[0].SessionID)
}

func TestSummariesEmpty(t *testing.T) {
	db := testDB(t)

	summaries, err := db.Summaries("")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestActivityCounts(t *testing.T) {
	db := testDB(t)
	base := time.Unix(1_700_000_000, 0)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Insert(Event{SessionID: "s1", Tool: "Edit", Activity: "coding", Personality: "p", RecordedAt: base}))
	}
	require.NoError(t, db.Insert(Event{SessionID: "s1", Tool: "Bash", Activity: "testing", Personality: "p", RecordedAt: base}))
	require.NoError(t, db.Insert(Event{SessionID: "s2", Tool: "Bash", Activity: "testing", Personality: "p", RecordedAt: base}))

	counts, err := db.ActivityCounts("s1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"coding": 3, "testing": 1}, counts)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())
}
