package conversation

import (
	"context"
	"testing"

	"labline/models"
	"labline/services/catalog"
	"labline/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine() (*DefaultEngine, *session.MemoryStore) {
	store := session.NewMemoryStore()
	return NewDefaultEngine(store, catalog.Default(), zap.NewNop()), store
}

func text(sender, body string) models.InboundEvent {
	return models.InboundEvent{SenderID: sender, Kind: models.EventKindText, Body: body}
}

func location(sender string, lat, lng float64, address string) models.InboundEvent {
	return models.InboundEvent{
		SenderID: sender,
		Kind:     models.EventKindLocation,
		Location: &models.Location{Latitude: lat, Longitude: lng, Address: address},
	}
}

// drive feeds events in order and returns the last result.
func drive(t *testing.T, eng *DefaultEngine, events ...models.InboundEvent) *Result {
	t.Helper()
	var res *Result
	var err error
	for _, ev := range events {
		res, err = eng.HandleEvent(context.Background(), ev)
		require.NoError(t, err)
	}
	return res
}

func replyTexts(res *Result) []string {
	var out []string
	for _, cmd := range res.Commands {
		if cmd.Type == models.CommandReply {
			out = append(out, cmd.Text)
		}
	}
	return out
}

func TestFullBookingDialogue(t *testing.T) {
	eng, store := newTestEngine()

	res := drive(t, eng, text("U1", "hi"))
	require.Len(t, res.Commands, 1)
	assert.Equal(t, welcomePrompt, res.Commands[0].Text)

	res = drive(t, eng, text("U1", "Asha"))
	require.Len(t, res.Commands, 1)
	assert.Contains(t, res.Commands[0].Text, "Hello, Asha!")
	assert.Contains(t, res.Commands[0].Text, "2) Biochemistry")

	res = drive(t, eng, text("U1", "2"))
	require.Len(t, res.Commands, 2)
	assert.Equal(t, models.CommandSendMedia, res.Commands[0].Type)
	assert.Equal(t, "2.png", res.Commands[0].MediaRef)
	assert.Contains(t, res.Commands[0].Caption, "*Biochemistry*")
	assert.Equal(t, locationPrompt, res.Commands[1].Text)

	res = drive(t, eng, location("U1", 12.9, 77.6, "MG Road"))
	require.Len(t, res.Commands, 2)
	assert.Equal(t, models.CommandReact, res.Commands[0].Type)
	assert.Equal(t, reactionAffirmative, res.Commands[0].Emoji)
	assert.Equal(t, preferredTimePrompt, res.Commands[1].Text)

	res = drive(t, eng, text("U1", "2024-05-01 10:00 AM"))
	require.Len(t, res.Commands, 2)
	assert.Equal(t, models.CommandReact, res.Commands[0].Type)
	summary := res.Commands[1].Text
	assert.Contains(t, summary, "*Name*: Asha")
	assert.Contains(t, summary, "*Service*: Biochemistry")
	assert.Contains(t, summary, "*Address*: MG Road")
	assert.Contains(t, summary, "*Preferred Time*: 2024-05-01 10:00 AM")

	res = drive(t, eng, text("U1", "yes"))
	require.True(t, res.SessionEnded)
	require.NotNil(t, res.Booking)
	assert.Equal(t, "U1", res.Booking.UserID)
	assert.Equal(t, "Asha", res.Booking.Name)
	assert.Equal(t, "Biochemistry", res.Booking.ServiceName)
	assert.Equal(t, 2, res.Booking.ServiceCode)
	assert.Equal(t, "MG Road", res.Booking.Address)
	assert.Equal(t, 12.9, res.Booking.Latitude)
	assert.Equal(t, 77.6, res.Booking.Longitude)
	assert.Equal(t, "2024-05-01 10:00 AM", res.Booking.PreferredTime)

	require.Len(t, res.Commands, 2)
	assert.Equal(t, reactionAffirmative, res.Commands[0].Emoji)
	final := res.Commands[1].Text
	assert.Contains(t, final, "Name: Asha")
	assert.Contains(t, final, "Service: Biochemistry")
	assert.Contains(t, final, "Address: MG Road")
	assert.Contains(t, final, "Preferred Time: 2024-05-01 10:00 AM")

	assert.False(t, store.Has("U1"), "session must be deleted after confirmation")
}

func TestConfirmationCaseInsensitive(t *testing.T) {
	eng, store := newTestEngine()

	res := drive(t, eng,
		text("U1", "hi"),
		text("U1", "Asha"),
		text("U1", "1"),
		location("U1", 1, 2, "Somewhere"),
		text("U1", "tomorrow"),
		text("U1", "  YES "),
	)
	require.True(t, res.SessionEnded)
	require.NotNil(t, res.Booking)
	assert.False(t, store.Has("U1"))
}

func TestDeclineDeletesSessionWithoutBooking(t *testing.T) {
	eng, store := newTestEngine()

	res := drive(t, eng,
		text("U1", "hi"),
		text("U1", "Asha"),
		text("U1", "3"),
		location("U1", 1, 2, "Somewhere"),
		text("U1", "tomorrow"),
		text("U1", "No"),
	)
	require.True(t, res.SessionEnded)
	assert.Nil(t, res.Booking)
	require.Len(t, res.Commands, 2)
	assert.Equal(t, reactionNegative, res.Commands[0].Emoji)
	assert.Equal(t, cancelledPrompt, res.Commands[1].Text)
	assert.False(t, store.Has("U1"))
}

func TestInvalidConfirmationStays(t *testing.T) {
	eng, store := newTestEngine()

	res := drive(t, eng,
		text("U1", "hi"),
		text("U1", "Asha"),
		text("U1", "3"),
		location("U1", 1, 2, "Somewhere"),
		text("U1", "tomorrow"),
		text("U1", "maybe"),
	)
	assert.False(t, res.SessionEnded)
	assert.Equal(t, []string{invalidConfirmationPrompt}, replyTexts(res))

	sess, err := store.GetOrCreate(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirmBooking, sess.Stage)
}

func TestInvalidSelectionIsIdempotent(t *testing.T) {
	eng, store := newTestEngine()
	drive(t, eng, text("U1", "hi"), text("U1", "Asha"))

	// Out-of-range and non-numeric input take the same error branch, any
	// number of times.
	for _, body := range []string{"9", "two", "0", "-1", "9", "two"} {
		res := drive(t, eng, text("U1", body))
		assert.Equal(t, []string{invalidSelectionPrompt}, replyTexts(res), "input %q", body)
		assert.False(t, res.SessionEnded)

		sess, err := store.GetOrCreate(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, models.StageSelectService, sess.Stage)
		assert.Zero(t, sess.ServiceCode)
	}

	// A valid choice still works afterwards.
	res := drive(t, eng, text("U1", "7"))
	require.Len(t, res.Commands, 2)
	assert.Equal(t, "7.png", res.Commands[0].MediaRef)
}

func TestTextWhileAwaitingLocationReprompts(t *testing.T) {
	eng, store := newTestEngine()
	drive(t, eng, text("U1", "hi"), text("U1", "Asha"), text("U1", "2"))

	res := drive(t, eng, text("U1", "I live near the station"))
	assert.Equal(t, []string{locationRetryPrompt}, replyTexts(res))
	assert.False(t, res.SessionEnded)

	sess, err := store.GetOrCreate(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, models.StageGetLocation, sess.Stage)
	assert.Nil(t, sess.Location)
}

func TestLocationWithoutAddressDefaults(t *testing.T) {
	eng, _ := newTestEngine()
	drive(t, eng, text("U1", "hi"), text("U1", "Asha"), text("U1", "2"))

	ev := models.InboundEvent{
		SenderID: "U1",
		Kind:     models.EventKindLocation,
		Location: &models.Location{Latitude: 12.9, Longitude: 77.6},
	}
	drive(t, eng, ev)
	res := drive(t, eng, text("U1", "tomorrow"))
	assert.Contains(t, res.Commands[1].Text, "*Address*: Not provided")
}

func TestSessionsDoNotInterfere(t *testing.T) {
	eng, store := newTestEngine()

	// Interleave two users at different stages.
	drive(t, eng, text("U1", "hi"))
	drive(t, eng, text("U2", "hello"))
	drive(t, eng, text("U1", "Asha"))
	drive(t, eng, text("U2", "Ravi"))
	drive(t, eng, text("U1", "2"))

	u1, err := store.GetOrCreate(context.Background(), "U1")
	require.NoError(t, err)
	u2, err := store.GetOrCreate(context.Background(), "U2")
	require.NoError(t, err)

	assert.Equal(t, "Asha", u1.Name)
	assert.Equal(t, models.StageGetLocation, u1.Stage)
	assert.Equal(t, "Ravi", u2.Name)
	assert.Equal(t, models.StageSelectService, u2.Stage)
	assert.Zero(t, u2.ServiceCode)
}

func TestUnknownStageResetsSession(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	sess.Stage = models.Stage("bogus")
	require.NoError(t, store.Save(ctx, sess))

	res := drive(t, eng, text("U1", "hi"))
	assert.True(t, res.SessionEnded)
	assert.Equal(t, []string{restartPrompt}, replyTexts(res))
	assert.False(t, store.Has("U1"))
}

func TestCatalogLookupFailureResetsSession(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	// A stored code with no catalog entry is an internal inconsistency.
	sess, err := store.GetOrCreate(ctx, "U1")
	require.NoError(t, err)
	sess.Stage = models.StageGetTime
	sess.Name = "Asha"
	sess.ServiceCode = 99
	sess.Location = &models.Location{Latitude: 1, Longitude: 2, Address: "Somewhere"}
	require.NoError(t, store.Save(ctx, sess))

	res := drive(t, eng, text("U1", "tomorrow"))
	assert.True(t, res.SessionEnded)
	assert.Nil(t, res.Booking)
	assert.Equal(t, []string{restartPrompt}, replyTexts(res))
	assert.False(t, store.Has("U1"))
}
