package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is enqueued when a user account is created.
	TaskWelcome = "email:welcome"

	// TaskPaymentReceipt is enqueued after a booking settles.
	TaskPaymentReceipt = "email:payment_receipt"
)

// WelcomeEmailPayload is the payload for TaskWelcome.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// PaymentReceiptPayload is the payload for TaskPaymentReceipt.
type PaymentReceiptPayload struct {
	To          string  `json:"to"`
	ServiceName string  `json:"service_name"`
	TrackingID  string  `json:"tracking_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// NewWelcomeEmailTask constructs the welcome email task.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewPaymentReceiptTask constructs the payment receipt task. Receipts go to
// the critical queue so they follow settlement promptly.
func NewPaymentReceiptTask(p PaymentReceiptPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPaymentReceipt,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}
