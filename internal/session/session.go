// Package session owns the bot's volatile runtime state: per-user
// conversation windows, draw cooldowns, the global tone toggle and the
// recent-fact cache. Everything lives in memory behind a single mutex;
// traffic is human-paced chat commands. State does not survive a restart.
// The only scheduled operation is the daily conversation wipe.
package session

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one stored message: the user's input or the assistant's reply.
type Turn struct {
	Role    Role
	Content string
}

const recentFactCapacity = 5

// Manager is the session state manager. Construct once at startup and pass
// to the command layer; there are no package-level globals.
type Manager struct {
	mu         sync.Mutex
	operatorID string
	histories  map[string][]Turn
	cooldowns  map[string]time.Time
	gentle     bool
	facts      *lru.Cache[string, struct{}]
}

func NewManager(operatorID string) *Manager {
	facts, _ := lru.New[string, struct{}](recentFactCapacity)
	return &Manager{
		operatorID: operatorID,
		histories:  make(map[string][]Turn),
		cooldowns:  make(map[string]time.Time),
		facts:      facts,
	}
}

// RecordTurn appends a turn to the user's history. The underlying store grows
// until the daily reset; only a trailing window is ever read.
func (m *Manager) RecordTurn(userID string, role Role, content string) {
	if content == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histories[userID] = append(m.histories[userID], Turn{Role: role, Content: content})
}

// ContextWindow returns up to n most recent turns for a user, oldest first.
// The result is a copy; mutating it does not touch the store.
func (m *Manager) ContextWindow(userID string, n int) []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.histories[userID]
	if n > len(history) {
		n = len(history)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Turn, n)
	copy(out, history[len(history)-n:])
	return out
}

// ResetAllConversations drops every user's history. Invoked by the daily
// scheduler; idempotent.
func (m *Manager) ResetAllConversations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histories = make(map[string][]Turn)
}

// IsOperator reports whether userID is the configured operator.
func (m *Manager) IsOperator(userID string) bool {
	return userID == m.operatorID
}
