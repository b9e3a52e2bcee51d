package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	session := &models.Session{
		ID:        "s1",
		Flow:      models.FlowCollectingCustomer,
		NextField: models.FieldFirstName,
		Customer:  models.CustomerDraft{Phone: "9876543210"},
	}
	require.NoError(t, store.PutSession(session))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, models.FieldFirstName, got.NextField)
	assert.Equal(t, "9876543210", got.Customer.Phone)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStorePutRequiresID(t *testing.T) {
	store := NewMemoryStore()

	err := store.PutSession(&models.Session{})
	assert.Error(t, err)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.PutSession(&models.Session{ID: "s1", NextField: models.FieldCity}))

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	got.NextField = models.FieldState

	again, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, models.FieldCity, again.NextField)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.PutSession(&models.Session{ID: "s1"}))

	require.NoError(t, store.DeleteSession("s1"))
	_, err := store.GetSession("s1")
	assert.Error(t, err)

	// Deleting an absent session is not an error.
	assert.NoError(t, store.DeleteSession("s1"))
}

func TestMemoryStoreList(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.PutSession(&models.Session{ID: "a"}))
	require.NoError(t, store.PutSession(&models.Session{ID: "b"}))

	sessions, err := store.ListSessions()
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n)
			_ = store.PutSession(&models.Session{ID: id})
			_, _ = store.GetSession(id)
			_, _ = store.ListSessions()
			_ = store.DeleteSession(id)
		}(i)
	}
	wg.Wait()

	sessions, err := store.ListSessions()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
