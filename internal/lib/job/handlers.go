package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/wedora/backend/internal/config"
	"github.com/wedora/backend/internal/lib/email"
)

// emailClient is shared by all job handlers. InitHandlers must run before
// the worker server starts.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(config *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(config, logger)
}

// handleWelcomeEmailTask sends the welcome email for a new user.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := emailClient.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err // Asynq retries failed tasks
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

// handlePaymentReceiptTask sends the settlement receipt email.
func (j *JobService) handlePaymentReceiptTask(ctx context.Context, t *asynq.Task) error {
	var p PaymentReceiptPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal payment receipt payload: %w", err)
	}

	j.logger.Info().
		Str("type", "payment_receipt").
		Str("to", p.To).
		Str("tracking_id", p.TrackingID).
		Msg("Processing payment receipt task")

	if err := emailClient.SendPaymentReceiptEmail(p.To, p.ServiceName, p.TrackingID, p.Amount, p.Currency); err != nil {
		j.logger.Error().
			Str("type", "payment_receipt").
			Str("to", p.To).
			Str("tracking_id", p.TrackingID).
			Err(err).
			Msg("Failed to send payment receipt email")
		return err
	}

	j.logger.Info().
		Str("type", "payment_receipt").
		Str("to", p.To).
		Str("tracking_id", p.TrackingID).
		Msg("Successfully sent payment receipt email")

	return nil
}

// EnqueuePaymentReceipt enqueues a receipt email, best effort at call sites.
func (j *JobService) EnqueuePaymentReceipt(p PaymentReceiptPayload) error {
	task, err := NewPaymentReceiptTask(p)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task)
	return err
}

// EnqueueWelcomeEmail enqueues a welcome email for a new user.
func (j *JobService) EnqueueWelcomeEmail(to, name string) error {
	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return err
	}
	_, err = j.Client.Enqueue(task)
	return err
}
