package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordFactIfNovel(t *testing.T) {
	m := NewManager("op")

	require.True(t, m.RecordFactIfNovel("F1"))
	require.False(t, m.RecordFactIfNovel("F1"))
	require.True(t, m.RecordFactIfNovel("F2"))
}

func TestRecordFactEvictsOldestAtCapacity(t *testing.T) {
	m := NewManager("op")

	for _, f := range []string{"F1", "F2", "F3", "F4", "F5"} {
		require.True(t, m.RecordFactIfNovel(f))
	}

	// F6 evicts F1, which then counts as novel again.
	require.True(t, m.RecordFactIfNovel("F6"))
	require.True(t, m.RecordFactIfNovel("F1"))

	// F2 was evicted by re-adding F1.
	require.True(t, m.RecordFactIfNovel("F2"))
	require.False(t, m.RecordFactIfNovel("F6"))
}

func TestRecordFactRepeatDoesNotRefreshPosition(t *testing.T) {
	m := NewManager("op")

	for _, f := range []string{"F1", "F2", "F3", "F4", "F5"} {
		m.RecordFactIfNovel(f)
	}

	// A rejected duplicate must not move F1 to the back of the queue.
	require.False(t, m.RecordFactIfNovel("F1"))
	require.True(t, m.RecordFactIfNovel("F6"))
	require.True(t, m.RecordFactIfNovel("F1"))
}
