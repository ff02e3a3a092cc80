package dispatch

import (
	"context"
	"fmt"

	bookingRepo "labline/database/repository/booking"
	"labline/models"
	"labline/services/conversation"

	"go.uber.org/zap"
)

// FollowUpQueue schedules the staff follow-up fired after a confirmed booking.
type FollowUpQueue interface {
	EnqueueFollowUp(booking models.Booking) error
}

// Dispatcher is the inbound pipeline: it serializes events per user, runs the
// conversation engine, persists a confirmed booking, and executes the
// resulting commands on the transport.
type Dispatcher struct {
	Engine    conversation.Engine
	Transport Transport
	Bookings  bookingRepo.BookingRepository
	Queue     FollowUpQueue
	Logger    *zap.Logger

	userLocks *userLockStore
}

func NewDispatcher(
	engine conversation.Engine,
	transport Transport,
	bookings bookingRepo.BookingRepository,
	queue FollowUpQueue,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		Engine:    engine,
		Transport: transport,
		Bookings:  bookings,
		Queue:     queue,
		Logger:    logger,
		userLocks: newUserLockStore(),
	}
}

// Dispatch processes one inbound event end to end. Processing for a given
// sender completes before the next event from that sender begins; events from
// different senders interleave freely. Once the engine has committed a
// transition it is authoritative: send failures are logged, never rolled back.
func (d *Dispatcher) Dispatch(ctx context.Context, ev models.InboundEvent) (*conversation.Result, error) {
	lock := d.userLocks.getLock(ev.SenderID)
	lock.Lock()
	defer lock.Unlock()

	res, err := d.Engine.HandleEvent(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("failed to process event for %s: %w", ev.SenderID, err)
	}

	if res.Booking != nil {
		d.finalizeBooking(ctx, res.Booking)
	}

	d.execute(ctx, ev.SenderID, res.Commands)
	return res, nil
}

// finalizeBooking persists the confirmed booking and schedules the staff
// follow-up. Neither failure affects the already-committed conversation.
func (d *Dispatcher) finalizeBooking(ctx context.Context, booking *models.Booking) {
	id, err := d.Bookings.Create(ctx, *booking)
	if err != nil {
		d.Logger.Error("failed to persist confirmed booking",
			zap.String("userId", booking.UserID), zap.Error(err))
	} else {
		booking.ID = id
	}

	if err := d.Queue.EnqueueFollowUp(*booking); err != nil {
		d.Logger.Error("failed to enqueue booking follow-up",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

func (d *Dispatcher) execute(ctx context.Context, to string, commands []models.OutboundCommand) {
	for _, cmd := range commands {
		var err error
		switch cmd.Type {
		case models.CommandReply:
			err = d.Transport.SendText(ctx, to, cmd.Text)
		case models.CommandSendMedia:
			err = d.Transport.SendMedia(ctx, to, cmd.MediaRef, cmd.Caption)
		case models.CommandReact:
			err = d.Transport.React(ctx, to, cmd.Emoji)
		default:
			d.Logger.Warn("unknown outbound command type", zap.String("type", string(cmd.Type)))
			continue
		}
		if err != nil {
			d.Logger.Error("outbound send failed",
				zap.String("to", to),
				zap.String("type", string(cmd.Type)),
				zap.Error(err))
		}
	}
}
