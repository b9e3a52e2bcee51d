package jobs

import (
	"log"
	"os"
	"time"

	"github.com/GaganNGowda/Invoice-Generator/internal/storage"
)

// SessionSweeper deletes sessions whose conversation went quiet. An abandoned
// flow otherwise sits in the store forever, since sessions are only deleted on
// terminal replies.
type SessionSweeper struct {
	store     storage.Store
	ttl       time.Duration
	interval  time.Duration
	isRunning bool
	stop      chan struct{}
}

// NewSessionSweeper reads SESSION_TTL (default 30m) and sweeps at half the TTL.
func NewSessionSweeper(store storage.Store) *SessionSweeper {
	ttl := 30 * time.Minute
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("⚠️ Invalid SESSION_TTL %q, using default: %v", raw, err)
		} else {
			ttl = parsed
		}
	}

	return &SessionSweeper{
		store:    store,
		ttl:      ttl,
		interval: ttl / 2,
		stop:     make(chan struct{}),
	}
}

// Start begins the sweep loop
func (s *SessionSweeper) Start() {
	if s.isRunning {
		log.Println("Session sweeper already running")
		return
	}
	s.isRunning = true
	log.Printf("Starting session sweeper (TTL %s)...", s.ttl)

	go s.run()
}

// Stop halts the sweep loop
func (s *SessionSweeper) Stop() {
	if !s.isRunning {
		return
	}
	s.isRunning = false
	close(s.stop)
	log.Println("Stopping session sweeper...")
}

func (s *SessionSweeper) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *SessionSweeper) sweep() {
	sessions, err := s.store.ListSessions()
	if err != nil {
		log.Printf("⚠️ Session sweep failed to list sessions: %v", err)
		return
	}

	cutoff := time.Now().Add(-s.ttl)
	expired := 0
	for _, session := range sessions {
		idleSince := session.LastActive
		if idleSince.IsZero() {
			idleSince = session.CreatedAt
		}
		if idleSince.IsZero() || idleSince.After(cutoff) {
			continue
		}
		if err := s.store.DeleteSession(session.ID); err != nil {
			log.Printf("⚠️ Failed to delete expired session %s: %v", session.ID, err)
			continue
		}
		expired++
	}

	if expired > 0 {
		log.Printf("🧹 Session sweep removed %d expired session(s)", expired)
	}
}
