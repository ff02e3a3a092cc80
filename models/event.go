package models

// EventKind classifies an inbound message payload.
type EventKind string

const (
	EventKindText     EventKind = "text"
	EventKindLocation EventKind = "location"
	EventKindOther    EventKind = "other"
)

// InboundEvent is one unit of input from the messaging transport, attributed
// to a stable sender identifier (e.g., a phone number).
type InboundEvent struct {
	SenderID string    `json:"senderId" binding:"required"`
	Kind     EventKind `json:"kind"`
	Body     string    `json:"body,omitempty"`
	Location *Location `json:"location,omitempty"`
}
