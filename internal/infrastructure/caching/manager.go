// Package caching provides in-memory caching for session dialog state and
// rendered HTML chunks.
package caching

import (
	"sync"
	"time"
)

/*
LOCKING HIERARCHY

To prevent deadlocks, ALL cache operations MUST follow this hierarchy:

1. Manager.mu (highest priority - top level)
2. SessionState.mu

RULES:
- Never acquire Manager.mu while holding a SessionState.mu
- Public methods acquire their own locks; internal "unsafe" methods do NOT
- Always use "defer unlock"
*/

// SessionState holds per-session dialog visibility.
type SessionState struct {
	SessionID    string
	OpenDialogs  map[string]bool
	LastAccessed time.Time
	mu           sync.RWMutex
}

// ChunkKey identifies one cached rendered dialog fragment.
type ChunkKey struct {
	DialogID string
	IsOpen   bool
}

type htmlChunk struct {
	html     string
	storedAt time.Time
}

// Manager coordinates the session state cache and the HTML chunk cache.
type Manager struct {
	sessions    map[string]*SessionState
	chunks      map[ChunkKey]htmlChunk
	maxSessions int
	sessionTTL  time.Duration
	chunkTTL    time.Duration
	mu          sync.RWMutex
}

// NewManager creates a cache manager with the given limits.
func NewManager(maxSessions int, sessionTTL, chunkTTL time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*SessionState),
		chunks:      make(map[ChunkKey]htmlChunk),
		maxSessions: maxSessions,
		sessionTTL:  sessionTTL,
		chunkTTL:    chunkTTL,
	}
}

// EnsureSession returns the state for a session, creating it if needed. The
// second return value reports whether the session already existed. Creation
// fails (nil, false) once the session cap is reached.
func (m *Manager) EnsureSession(sessionID string) (*SessionState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state, exists := m.sessions[sessionID]; exists {
		state.mu.Lock()
		state.LastAccessed = time.Now()
		state.mu.Unlock()
		return state, true
	}

	if len(m.sessions) >= m.maxSessions {
		return nil, false
	}

	state := &SessionState{
		SessionID:    sessionID,
		OpenDialogs:  make(map[string]bool),
		LastAccessed: time.Now(),
	}
	m.sessions[sessionID] = state
	return state, false
}

// GetDialogState reports whether a dialog is open for a session. Unknown
// sessions and unknown dialogs are closed.
func (m *Manager) GetDialogState(sessionID, dialogID string) bool {
	m.mu.RLock()
	state, exists := m.sessions[sessionID]
	m.mu.RUnlock()
	if !exists {
		return false
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	state.LastAccessed = time.Now()
	return state.OpenDialogs[dialogID]
}

// SetDialogState records a dialog's open state for a session and returns
// whether the session was known.
func (m *Manager) SetDialogState(sessionID, dialogID string, isOpen bool) bool {
	m.mu.RLock()
	state, exists := m.sessions[sessionID]
	m.mu.RUnlock()
	if !exists {
		return false
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	state.LastAccessed = time.Now()
	if isOpen {
		state.OpenDialogs[dialogID] = true
	} else {
		delete(state.OpenDialogs, dialogID)
	}
	return true
}

// GetHTMLChunk returns a cached rendered fragment if present and fresh.
func (m *Manager) GetHTMLChunk(key ChunkKey) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chunk, exists := m.chunks[key]
	if !exists {
		return "", false
	}
	if m.chunkTTL > 0 && time.Since(chunk.storedAt) > m.chunkTTL {
		return "", false
	}
	return chunk.html, true
}

// SetHTMLChunk stores a rendered fragment.
func (m *Manager) SetHTMLChunk(key ChunkKey, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks[key] = htmlChunk{html: html, storedAt: time.Now()}
}

// InvalidateDialogChunks drops all cached fragments for a dialog.
func (m *Manager) InvalidateDialogChunks(dialogID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.chunks, ChunkKey{DialogID: dialogID, IsOpen: true})
	delete(m.chunks, ChunkKey{DialogID: dialogID, IsOpen: false})
}

// SessionCount returns the number of live sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EvictExpired removes sessions idle past the session TTL and stale chunks,
// returning how many sessions were evicted.
func (m *Manager) EvictExpired(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, state := range m.sessions {
		state.mu.RLock()
		idle := now.Sub(state.LastAccessed)
		state.mu.RUnlock()
		if m.sessionTTL > 0 && idle > m.sessionTTL {
			delete(m.sessions, id)
			evicted++
		}
	}

	for key, chunk := range m.chunks {
		if m.chunkTTL > 0 && now.Sub(chunk.storedAt) > m.chunkTTL {
			delete(m.chunks, key)
		}
	}

	return evicted
}
