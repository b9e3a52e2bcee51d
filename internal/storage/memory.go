package storage

import (
	"fmt"
	"sync"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// ErrSessionNotFound is returned when no session exists for the given ID.
var ErrSessionNotFound = fmt.Errorf("session not found")

// MemoryStore holds all sessions in memory for local development
type MemoryStore struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
	}
}

func (m *MemoryStore) GetSession(sessionID string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

func (m *MemoryStore) PutSession(session *models.Session) error {
	if session.ID == "" {
		return fmt.Errorf("session has no ID")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *MemoryStore) DeleteSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStore) ListSessions() ([]*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]*models.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		copied := *session
		sessions = append(sessions, &copied)
	}
	return sessions, nil
}
