package conversation

import (
	"fmt"

	"labline/models"
)

// Reaction emojis attached to inbound messages on accepted transitions.
const (
	reactionAffirmative = "\U0001F44D" // thumbs up
	reactionNegative    = "\U0001F44E" // thumbs down
)

const (
	welcomePrompt = "Welcome to Pathological Services! Please enter your name:"

	invalidSelectionPrompt = "Invalid selection. Please send a number between 1 and 7 corresponding to the service you want."

	locationPrompt = "Please share your location for the booking by clicking the attachment icon and selecting location."

	locationRetryPrompt = "Please share your location by clicking the attachment icon and selecting location."

	preferredTimePrompt = `Please provide your preferred time for the appointment (e.g., "2024-05-01 10:00 AM"):`

	invalidConfirmationPrompt = "Invalid response. Please reply with 'Yes' to confirm or 'No' to cancel."

	cancelledPrompt = "Your booking has been canceled. If you wish to make a new booking, please start the process again."

	restartPrompt = "Sorry, something went wrong. Please start over by sending any message."
)

func greetingPrompt(name, menu string) string {
	return fmt.Sprintf("Hello, %s! Please select a service from the list below by sending the corresponding number:\n\n%s", name, menu)
}

func summaryPrompt(sess *models.Session, serviceName string) string {
	return fmt.Sprintf("Please confirm your booking details:\n\n"+
		"*Name*: %s\n"+
		"*Service*: %s\n"+
		"*Address*: %s\n"+
		"*Preferred Time*: %s\n\n"+
		"Please reply with 'Yes' to confirm or 'No' to cancel.",
		sess.Name, serviceName, sess.Location.Address, sess.PreferredTime)
}

func confirmedPrompt(sess *models.Session, serviceName string) string {
	return fmt.Sprintf("Thank you, %s! Your appointment has been booked.\n\n"+
		"*Booking Details:*\n"+
		"Name: %s\n"+
		"Service: %s\n"+
		"Address: %s\n"+
		"Preferred Time: %s\n\n"+
		"We have received your booking and will confirm shortly.",
		sess.Name, sess.Name, serviceName, sess.Location.Address, sess.PreferredTime)
}
