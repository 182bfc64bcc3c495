package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTogglePersonalityOperatorFlips(t *testing.T) {
	m := NewManager("op")

	require.Equal(t, ToneDefault, m.Personality("anyone"))

	tone, err := m.TogglePersonality("op")
	require.NoError(t, err)
	require.Equal(t, ToneGentle, tone)
	require.Equal(t, ToneGentle, m.Personality("anyone"))

	tone, err = m.TogglePersonality("op")
	require.NoError(t, err)
	require.Equal(t, ToneDefault, tone)
	require.Equal(t, ToneDefault, m.Personality("anyone"))
}

func TestTogglePersonalityRejectsNonOperator(t *testing.T) {
	m := NewManager("op")

	_, err := m.TogglePersonality("intruder")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, ToneDefault, m.Personality("intruder"))
}

func TestPersonalityIsGlobal(t *testing.T) {
	m := NewManager("op")

	_, err := m.TogglePersonality("op")
	require.NoError(t, err)

	require.Equal(t, ToneGentle, m.Personality("u1"))
	require.Equal(t, ToneGentle, m.Personality("u2"))
}
