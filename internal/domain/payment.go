package domain

import "time"

// Payment is the durable record of one settled checkout transaction.
// TransactionID is unique; the settlement flow is the sole writer.
type Payment struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	TransactionID string    `json:"transactionId"`
	TrackingID    string    `json:"trackingId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customerEmail"`
	ServiceName   string    `json:"serviceName"`
	Status        string    `json:"paymentStatus"`
	PaidAt        time.Time `json:"paidAt"`
}
