package conversation

import (
	"context"

	"labline/models"
	"labline/services/catalog"
	"labline/services/session"

	"go.uber.org/zap"
)

// Engine advances a user's conversation session in response to one inbound
// event and describes the sends the transport must perform.
type Engine interface {
	HandleEvent(ctx context.Context, ev models.InboundEvent) (*Result, error)
}

// Result is the outcome of processing one inbound event.
type Result struct {
	// Commands are executed together, in order, by the transport.
	Commands []models.OutboundCommand
	// Booking is non-nil only when the dialogue completed with a confirmed
	// booking. Persisting it is the caller's responsibility.
	Booking *models.Booking
	// SessionEnded reports that the session was deleted; the next event from
	// this user starts a fresh dialogue.
	SessionEnded bool
}

// DefaultEngine implements Engine over a session store and the static
// service catalog.
type DefaultEngine struct {
	Store   session.Store
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

func NewDefaultEngine(store session.Store, cat *catalog.Catalog, logger *zap.Logger) *DefaultEngine {
	return &DefaultEngine{
		Store:   store,
		Catalog: cat,
		Logger:  logger,
	}
}
