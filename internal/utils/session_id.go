package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewSessionID generates an opaque session id for callers that did not send
// one. Timestamp prefix keeps ids roughly sortable in logs.
func NewSessionID() string {
	return fmt.Sprintf("session-%d-%s", time.Now().Unix(), uuid.NewString())
}
