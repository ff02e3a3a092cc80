package conversation

import (
	"strconv"
	"strings"

	"labline/models"
	"labline/services/catalog"
)

// outcome classifies what a stage handler did with the input.
type outcome int

const (
	// outcomeStay rejects the input: the stage is unchanged and the user is
	// re-prompted. The only loop in the machine.
	outcomeStay outcome = iota
	// outcomeAdvance consumed the input and moved exactly one stage forward.
	outcomeAdvance
	// outcomeComplete finishes the dialogue with a confirmed booking.
	outcomeComplete
	// outcomeCancel finishes the dialogue without a booking.
	outcomeCancel
	// outcomeFail hit an internal inconsistency; the session is reset.
	outcomeFail
)

func (o outcome) terminal() bool {
	return o == outcomeComplete || o == outcomeCancel || o == outcomeFail
}

// stepResult is the full effect of one stage handler invocation.
type stepResult struct {
	outcome  outcome
	commands []models.OutboundCommand
	booking  *models.Booking
	err      error
}

// stageHandler advances one stage of the dialogue. Handlers are pure: they
// mutate only the passed session and describe sends as commands, leaving
// execution to the dispatcher.
type stageHandler func(sess *models.Session, ev models.InboundEvent, cat *catalog.Catalog) stepResult

func handlerFor(stage models.Stage) (stageHandler, bool) {
	switch stage {
	case models.StageAskName:
		return handleAskName, true
	case models.StageGetName:
		return handleGetName, true
	case models.StageSelectService:
		return handleSelectService, true
	case models.StageGetLocation:
		return handleGetLocation, true
	case models.StageGetTime:
		return handleGetTime, true
	case models.StageConfirmBooking:
		return handleConfirmBooking, true
	default:
		return nil, false
	}
}

// handleAskName greets the user on their first message. The content of the
// message itself is ignored.
func handleAskName(sess *models.Session, _ models.InboundEvent, _ *catalog.Catalog) stepResult {
	sess.Stage = models.StageGetName
	return stepResult{
		outcome:  outcomeAdvance,
		commands: []models.OutboundCommand{models.Reply(welcomePrompt)},
	}
}

// handleGetName stores the name and presents the numbered service menu.
func handleGetName(sess *models.Session, ev models.InboundEvent, cat *catalog.Catalog) stepResult {
	sess.Name = strings.TrimSpace(ev.Body)
	sess.Stage = models.StageSelectService
	return stepResult{
		outcome:  outcomeAdvance,
		commands: []models.OutboundCommand{models.Reply(greetingPrompt(sess.Name, cat.Menu()))},
	}
}

// handleSelectService parses the menu choice. Non-numeric input and
// out-of-range numbers take the same error branch.
func handleSelectService(sess *models.Session, ev models.InboundEvent, cat *catalog.Catalog) stepResult {
	code, err := strconv.Atoi(strings.TrimSpace(ev.Body))
	if err != nil {
		return stepResult{
			outcome:  outcomeStay,
			commands: []models.OutboundCommand{models.Reply(invalidSelectionPrompt)},
		}
	}
	svc, ok := cat.Get(code)
	if !ok {
		return stepResult{
			outcome:  outcomeStay,
			commands: []models.OutboundCommand{models.Reply(invalidSelectionPrompt)},
		}
	}

	sess.ServiceCode = svc.Code
	sess.Stage = models.StageGetLocation
	return stepResult{
		outcome: outcomeAdvance,
		commands: []models.OutboundCommand{
			models.SendMedia(svc.MediaRef, svc.Description),
			models.Reply(locationPrompt),
		},
	}
}

// handleGetLocation accepts only a location-typed event.
func handleGetLocation(sess *models.Session, ev models.InboundEvent, _ *catalog.Catalog) stepResult {
	if ev.Kind != models.EventKindLocation || ev.Location == nil {
		return stepResult{
			outcome:  outcomeStay,
			commands: []models.OutboundCommand{models.Reply(locationRetryPrompt)},
		}
	}

	loc := *ev.Location
	if loc.Address == "" {
		loc.Address = "Not provided"
	}
	sess.Location = &loc
	sess.Stage = models.StageGetTime
	return stepResult{
		outcome: outcomeAdvance,
		commands: []models.OutboundCommand{
			models.React(reactionAffirmative),
			models.Reply(preferredTimePrompt),
		},
	}
}

// handleGetTime stores the free-text preferred time and asks for confirmation.
func handleGetTime(sess *models.Session, ev models.InboundEvent, cat *catalog.Catalog) stepResult {
	svc, ok := cat.Get(sess.ServiceCode)
	if !ok {
		return failedLookup(sess.ServiceCode)
	}

	sess.PreferredTime = strings.TrimSpace(ev.Body)
	sess.Stage = models.StageConfirmBooking
	return stepResult{
		outcome: outcomeAdvance,
		commands: []models.OutboundCommand{
			models.React(reactionAffirmative),
			models.Reply(summaryPrompt(sess, svc.Name)),
		},
	}
}

// handleConfirmBooking resolves the dialogue on a case-insensitive yes/no.
func handleConfirmBooking(sess *models.Session, ev models.InboundEvent, cat *catalog.Catalog) stepResult {
	switch strings.ToLower(strings.TrimSpace(ev.Body)) {
	case "yes":
		svc, ok := cat.Get(sess.ServiceCode)
		if !ok {
			return failedLookup(sess.ServiceCode)
		}
		booking := &models.Booking{
			UserID:        sess.UserID,
			Name:          sess.Name,
			ServiceCode:   svc.Code,
			ServiceName:   svc.Name,
			Latitude:      sess.Location.Latitude,
			Longitude:     sess.Location.Longitude,
			Address:       sess.Location.Address,
			PreferredTime: sess.PreferredTime,
		}
		return stepResult{
			outcome: outcomeComplete,
			booking: booking,
			commands: []models.OutboundCommand{
				models.React(reactionAffirmative),
				models.Reply(confirmedPrompt(sess, svc.Name)),
			},
		}
	case "no":
		return stepResult{
			outcome: outcomeCancel,
			commands: []models.OutboundCommand{
				models.React(reactionNegative),
				models.Reply(cancelledPrompt),
			},
		}
	default:
		return stepResult{
			outcome:  outcomeStay,
			commands: []models.OutboundCommand{models.Reply(invalidConfirmationPrompt)},
		}
	}
}

func failedLookup(code int) stepResult {
	return stepResult{
		outcome:  outcomeFail,
		commands: []models.OutboundCommand{models.Reply(restartPrompt)},
		err:      NewLookupError(code, "stored service code not present in catalog"),
	}
}
