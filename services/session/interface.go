package session

import (
	"context"

	"labline/models"
)

// Store owns the mapping from user identifier to conversation session.
// Implementations must treat a deleted session as absent: GetOrCreate after
// Delete returns a fresh session at the initial stage.
type Store interface {
	// GetOrCreate returns the existing session for userID, creating one at
	// the initial stage if none exists.
	GetOrCreate(ctx context.Context, userID string) (*models.Session, error)
	// Save persists mutations made while processing the current event.
	Save(ctx context.Context, sess *models.Session) error
	// Delete removes the session, terminating the conversation. Idempotent.
	Delete(ctx context.Context, userID string) error
}
