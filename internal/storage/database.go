package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// SessionRecord is the database row for a persisted session. The dialogue
// state itself is stored as a JSON document since its shape changes with the
// flow being run.
type SessionRecord struct {
	SessionID  string    `gorm:"primaryKey;column:session_id"`
	Context    string    `gorm:"column:context;type:text"`
	LastActive time.Time `gorm:"column:last_active;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName keeps the table name stable across GORM naming strategies.
func (SessionRecord) TableName() string {
	return "sessions"
}

// DatabaseStore persists sessions to PostgreSQL via GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore migrates the sessions table and returns a store bound to db.
func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate sessions table: %w", err)
	}
	return &DatabaseStore{db: db}, nil
}

func (d *DatabaseStore) GetSession(sessionID string) (*models.Session, error) {
	var record SessionRecord
	err := d.db.First(&record, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(record.Context), &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	session.ID = record.SessionID
	return &session, nil
}

func (d *DatabaseStore) PutSession(session *models.Session) error {
	if session.ID == "" {
		return fmt.Errorf("session has no ID")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	record := SessionRecord{
		SessionID:  session.ID,
		Context:    string(payload),
		LastActive: session.LastActive,
	}
	return d.db.Save(&record).Error
}

func (d *DatabaseStore) DeleteSession(sessionID string) error {
	return d.db.Delete(&SessionRecord{}, "session_id = ?", sessionID).Error
}

func (d *DatabaseStore) ListSessions() ([]*models.Session, error) {
	var records []SessionRecord
	if err := d.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(records))
	for _, record := range records {
		var session models.Session
		if err := json.Unmarshal([]byte(record.Context), &session); err != nil {
			return nil, fmt.Errorf("decode session %s: %w", record.SessionID, err)
		}
		session.ID = record.SessionID
		sessions = append(sessions, &session)
	}
	return sessions, nil
}
