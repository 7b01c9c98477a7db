package domain

import "time"

// PaymentStatus is the settlement state of a booking.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// Booking reserves a service for a calendar day. At most one booking may
// exist per (service, date) pair; the database enforces this.
type Booking struct {
	ID          string        `json:"id"`
	ServiceID   string        `json:"serviceId"`
	ServiceName string        `json:"serviceName"`
	Date        string        `json:"date"` // YYYY-MM-DD
	UserEmail   string        `json:"userEmail"`
	Status      PaymentStatus `json:"paymentStatus"`
	TrackingID  string        `json:"trackingId,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}
