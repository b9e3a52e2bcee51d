package storage

import (
	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// Store defines the interface for session persistence
type Store interface {
	GetSession(sessionID string) (*models.Session, error)
	PutSession(session *models.Session) error
	DeleteSession(sessionID string) error
	ListSessions() ([]*models.Session, error)
}
