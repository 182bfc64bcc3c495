package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	s, err := New(ctx, filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
		cancel()
	})
	return s
}

func TestChatChannelRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	ch, err := s.GetChatChannel("g1")
	require.NoError(t, err)
	require.Empty(t, ch)

	require.NoError(t, s.SetChatChannel("g1", "chan-42"))
	ch, err = s.GetChatChannel("g1")
	require.NoError(t, err)
	require.Equal(t, "chan-42", ch)

	require.NoError(t, s.SetChatChannel("g1", ""))
	ch, err = s.GetChatChannel("g1")
	require.NoError(t, err)
	require.Empty(t, ch)
}

func TestCommandHashesRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	hashes, err := s.GetCommandHashes("g1")
	require.NoError(t, err)
	require.Empty(t, hashes)

	want := map[string]string{"ask": "abc123", "draw": "def456"}
	require.NoError(t, s.SetCommandHashes("g1", want))

	hashes, err = s.GetCommandHashes("g1")
	require.NoError(t, err)
	require.Equal(t, want, hashes)
}

func TestRecordsSurviveReopen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	path := filepath.Join(t.TempDir(), "datastore.json")

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SetChatChannel("g1", "chan-42"))
	require.NoError(t, s.SetCommandHashes("g1", map[string]string{"ask": "abc123"}))
	require.NoError(t, s.Close())

	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	ch, err := s.GetChatChannel("g1")
	require.NoError(t, err)
	require.Equal(t, "chan-42", ch)

	hashes, err := s.GetCommandHashes("g1")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"ask": "abc123"}, hashes)
}

func TestCommandHistoryTrimsToLimit(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+5; i++ {
		require.NoError(t, s.AppendCommandToHistory("g1", CommandHistoryRecord{
			Command:  "ask",
			UserID:   "u1",
			Datetime: time.Now(),
		}))
	}

	history, err := s.FetchCommandHistory("g1")
	require.NoError(t, err)
	require.LessOrEqual(t, len(history), commandHistoryLimit+1)
}
