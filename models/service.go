// models/service.go
package models

// Service represents one entry of the static diagnostic service catalog.
type Service struct {
	Code        int    `json:"code"`        // Menu number the user replies with (1-7)
	Name        string `json:"name"`        // e.g., "Hematology"
	Description string `json:"description"` // Formatted list of offered tests
	MediaRef    string `json:"mediaRef"`    // Illustrative asset reference, resolved by the transport
}
