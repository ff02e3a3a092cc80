package conversation

import (
	"context"
	"fmt"

	"labline/models"

	"go.uber.org/zap"
)

// HandleEvent resolves the sender's session, runs the handler for its current
// stage, and commits the transition before returning the outbound commands.
// Faults inside a stage handler never escape: the session is left at its last
// consistent stage so the next valid input can be retried.
func (e *DefaultEngine) HandleEvent(ctx context.Context, ev models.InboundEvent) (res *Result, err error) {
	sess, err := e.Store.GetOrCreate(ctx, ev.SenderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			e.Logger.Error("conversation step panicked; session left unchanged",
				zap.String("userId", ev.SenderID),
				zap.String("stage", string(sess.Stage)),
				zap.Any("panic", r))
			res, err = &Result{}, nil
		}
	}()

	handler, ok := handlerFor(sess.Stage)
	if !ok {
		// Defensive fallback: a session in an unknown stage is unrecoverable.
		e.Logger.Error("session in unknown stage, resetting",
			zap.String("userId", sess.UserID),
			zap.String("stage", string(sess.Stage)))
		if derr := e.Store.Delete(ctx, sess.UserID); derr != nil {
			return nil, fmt.Errorf("failed to reset session: %w", derr)
		}
		return &Result{
			Commands:     []models.OutboundCommand{models.Reply(restartPrompt)},
			SessionEnded: true,
		}, nil
	}

	step := handler(sess, ev, e.Catalog)
	if step.err != nil {
		e.Logger.Error("conversation stage failed",
			zap.String("userId", sess.UserID),
			zap.String("stage", string(sess.Stage)),
			zap.Error(step.err))
	}

	switch step.outcome {
	case outcomeAdvance:
		if serr := e.Store.Save(ctx, sess); serr != nil {
			return nil, fmt.Errorf("failed to save session: %w", serr)
		}
	case outcomeStay:
		// Invalid input: nothing to persist, the re-prompt carries the error.
	default:
		if derr := e.Store.Delete(ctx, sess.UserID); derr != nil {
			return nil, fmt.Errorf("failed to delete session: %w", derr)
		}
	}

	return &Result{
		Commands:     step.commands,
		Booking:      step.booking,
		SessionEnded: step.outcome.terminal(),
	}, nil
}
