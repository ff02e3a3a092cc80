package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`                         // Unique booking identifier (e.g., UUID)
	UserID        string    `bson:"user_id" json:"user_id"`               // Sender identifier the booking was made from
	Name          string    `bson:"name" json:"name"`                     // Name collected during the dialogue
	ServiceCode   int       `bson:"service_code" json:"service_code"`     // Catalog code of the chosen service
	ServiceName   string    `bson:"service_name" json:"service_name"`     // Display name of the chosen service
	Latitude      float64   `bson:"latitude" json:"latitude"`             // Shared location
	Longitude     float64   `bson:"longitude" json:"longitude"`           //
	Address       string    `bson:"address" json:"address"`               // "Not provided" when the share carried no address
	PreferredTime string    `bson:"preferred_time" json:"preferred_time"` // Free-text preferred appointment time
	Status        string    `bson:"status" json:"status"`                 // e.g., "Received", "Confirmed"
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`         // Timestamp when booking was created
}
