package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextWindowReturnsMostRecentOldestFirst(t *testing.T) {
	m := NewManager("op")

	for _, content := range []string{"one", "two", "three", "four"} {
		m.RecordTurn("u1", RoleUser, content)
	}

	window := m.ContextWindow("u1", 3)
	require.Len(t, window, 3)
	require.Equal(t, "two", window[0].Content)
	require.Equal(t, "three", window[1].Content)
	require.Equal(t, "four", window[2].Content)
}

func TestContextWindowShorterHistory(t *testing.T) {
	m := NewManager("op")
	m.RecordTurn("u1", RoleUser, "hello")
	m.RecordTurn("u1", RoleAssistant, "hi")

	window := m.ContextWindow("u1", 10)
	require.Len(t, window, 2)
	require.Equal(t, RoleUser, window[0].Role)
	require.Equal(t, RoleAssistant, window[1].Role)
}

func TestContextWindowUnknownUser(t *testing.T) {
	m := NewManager("op")
	require.Nil(t, m.ContextWindow("stranger", 10))
}

func TestContextWindowIsACopy(t *testing.T) {
	m := NewManager("op")
	m.RecordTurn("u1", RoleUser, "original")

	window := m.ContextWindow("u1", 1)
	window[0].Content = "mutated"

	again := m.ContextWindow("u1", 1)
	require.Equal(t, "original", again[0].Content)
}

func TestRecordTurnIgnoresEmptyContent(t *testing.T) {
	m := NewManager("op")
	m.RecordTurn("u1", RoleAssistant, "")
	require.Nil(t, m.ContextWindow("u1", 10))
}

func TestResetAllConversations(t *testing.T) {
	m := NewManager("op")
	m.RecordTurn("u1", RoleUser, "hello")
	m.RecordTurn("u2", RoleUser, "hey")

	m.ResetAllConversations()
	require.Nil(t, m.ContextWindow("u1", 10))
	require.Nil(t, m.ContextWindow("u2", 10))

	// Idempotent on an already-empty store.
	m.ResetAllConversations()
	require.Nil(t, m.ContextWindow("u1", 10))

	m.RecordTurn("u1", RoleUser, "fresh start")
	require.Len(t, m.ContextWindow("u1", 10), 1)
}

func TestIsOperator(t *testing.T) {
	m := NewManager("op")
	require.True(t, m.IsOperator("op"))
	require.False(t, m.IsOperator("someone-else"))
}
