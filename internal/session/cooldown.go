package session

import "time"

// CheckCooldown reports whether userID may perform a rate-limited action at
// now, given the required gap d. An unknown user is immediately eligible.
// An allowed check consumes the cooldown by recording now; a denied check
// leaves the stored timestamp untouched (repeated denials never extend the
// wait) and returns the remaining time rounded up to whole seconds.
func (m *Manager) CheckCooldown(userID string, d time.Duration, now time.Time) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	last, ok := m.cooldowns[userID]
	if !ok || now.Sub(last) >= d {
		m.cooldowns[userID] = now
		return true, 0
	}

	remaining := d - now.Sub(last)
	if rem := remaining % time.Second; rem != 0 {
		remaining += time.Second - rem
	}
	return false, remaining
}
