// Package domain holds the core entities of the booking platform.
package domain

import "time"

// Service is an event service offered on the platform (catering,
// photography, venue decoration, ...).
type Service struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Description   string    `json:"description,omitempty"`
	ProviderName  string    `json:"providerName,omitempty"`
	ProviderEmail string    `json:"providerEmail,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
