package models

import "time"

// Stage identifies where a user currently is in the booking dialogue.
type Stage string

const (
	StageAskName        Stage = "ask_name"
	StageGetName        Stage = "get_name"
	StageSelectService  Stage = "select_service"
	StageGetLocation    Stage = "get_location"
	StageGetTime        Stage = "get_time"
	StageConfirmBooking Stage = "confirm_booking"
)

// Location is a shared-location payload attached to an inbound message.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Session tracks one user's progress through the booking dialogue. Fields
// fill in stage order; a field is never set before the preceding stage has
// consumed its input.
type Session struct {
	UserID        string    `json:"userId"`
	Stage         Stage     `json:"stage"`
	Name          string    `json:"name,omitempty"`
	ServiceCode   int       `json:"serviceCode,omitempty"`
	Location      *Location `json:"location,omitempty"`
	PreferredTime string    `json:"preferredTime,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewSession returns a fresh session at the initial stage.
func NewSession(userID string) *Session {
	now := time.Now()
	return &Session{
		UserID:    userID,
		Stage:     StageAskName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
