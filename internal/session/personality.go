package session

import "errors"

// Tone selects which system instructions accompany a model call.
type Tone string

const (
	ToneDefault Tone = "default"
	ToneGentle  Tone = "gentle"
)

var ErrUnauthorized = errors.New("only the operator may change the tone")

// TogglePersonality flips the global gentle toggle and returns the new tone.
// The toggle is one switch for everyone. Non-operators get ErrUnauthorized
// and no state change.
func (m *Manager) TogglePersonality(requesterID string) (Tone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if requesterID != m.operatorID {
		return "", ErrUnauthorized
	}
	m.gentle = !m.gentle
	return m.toneLocked(), nil
}

// Personality returns the tone applied to the next model call. The userID
// parameter is accepted for call-site symmetry; with the global toggle every
// user resolves to the same tone.
func (m *Manager) Personality(userID string) Tone {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.toneLocked()
}

func (m *Manager) toneLocked() Tone {
	if m.gentle {
		return ToneGentle
	}
	return ToneDefault
}
