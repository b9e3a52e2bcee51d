package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
	"github.com/GaganNGowda/Invoice-Generator/internal/storage"
)

func TestSweepRemovesExpiredSessions(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.PutSession(&models.Session{
		ID:         "stale",
		LastActive: time.Now().Add(-2 * time.Hour),
	}))
	require.NoError(t, store.PutSession(&models.Session{
		ID:         "fresh",
		LastActive: time.Now(),
	}))

	sweeper := NewSessionSweeper(store)
	sweeper.sweep()

	_, err := store.GetSession("stale")
	assert.Error(t, err)

	_, err = store.GetSession("fresh")
	assert.NoError(t, err)
}

func TestSweepFallsBackToCreatedAt(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.PutSession(&models.Session{
		ID:        "old",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}))

	sweeper := NewSessionSweeper(store)
	sweeper.sweep()

	_, err := store.GetSession("old")
	assert.Error(t, err)
}

func TestSweepSkipsSessionsWithoutTimestamps(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.PutSession(&models.Session{ID: "no-clock"}))

	sweeper := NewSessionSweeper(store)
	sweeper.sweep()

	_, err := store.GetSession("no-clock")
	assert.NoError(t, err)
}

func TestStartStopIdempotent(t *testing.T) {
	sweeper := NewSessionSweeper(storage.NewMemoryStore())
	sweeper.Start()
	sweeper.Start()
	sweeper.Stop()
	sweeper.Stop()
}
