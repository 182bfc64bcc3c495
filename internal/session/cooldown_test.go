package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCheckCooldownFirstUseAllowed(t *testing.T) {
	m := NewManager("op")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	ok, remaining := m.CheckCooldown("u1", 30*time.Second, now)
	require.True(t, ok)
	require.Zero(t, remaining)
}

func TestCheckCooldownDeniesWithinWindow(t *testing.T) {
	m := NewManager("op")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	ok, _ := m.CheckCooldown("u1", 30*time.Second, now)
	require.True(t, ok)

	ok, remaining := m.CheckCooldown("u1", 30*time.Second, now.Add(10*time.Second))
	require.False(t, ok)
	require.Equal(t, 20*time.Second, remaining)
}

func TestCheckCooldownRemainingRoundsUp(t *testing.T) {
	m := NewManager("op")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	m.CheckCooldown("u1", 30*time.Second, now)

	_, remaining := m.CheckCooldown("u1", 30*time.Second, now.Add(10*time.Second+500*time.Millisecond))
	require.Equal(t, 20*time.Second, remaining)
}

func TestCheckCooldownDenialDoesNotExtendWait(t *testing.T) {
	m := NewManager("op")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	m.CheckCooldown("u1", 30*time.Second, now)

	// Hammering the command while denied must not push back eligibility.
	for i := 1; i < 30; i++ {
		ok, _ := m.CheckCooldown("u1", 30*time.Second, now.Add(time.Duration(i)*time.Second))
		require.False(t, ok)
	}

	ok, remaining := m.CheckCooldown("u1", 30*time.Second, now.Add(30*time.Second))
	require.True(t, ok)
	require.Zero(t, remaining)
}

func TestCheckCooldownPerUser(t *testing.T) {
	m := NewManager("op")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	ok, _ := m.CheckCooldown("u1", 30*time.Second, now)
	require.True(t, ok)

	ok, _ = m.CheckCooldown("u2", 30*time.Second, now)
	require.True(t, ok)
}
