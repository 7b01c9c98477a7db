// Package checkout wraps the hosted payment checkout provider (Stripe).
//
// The rest of the application only sees the Session type and the
// create/retrieve operations; provider types do not leak past this package.
package checkout

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/wedora/backend/internal/config"
)

const (
	// Currency for all checkout sessions. Prices are stored in major
	// units and converted to the currency's minor unit for the provider.
	Currency = "bdt"

	metadataBookingID   = "booking_id"
	metadataServiceName = "service_name"
)

// Session is the provider-neutral view of a checkout session.
type Session struct {
	ID  string
	URL string

	// PaymentStatus is "paid" once the customer has completed payment.
	PaymentStatus string

	// TransactionID identifies the underlying payment transaction and is
	// globally unique per completed payment.
	TransactionID string

	// AmountTotal is in the currency's minor unit.
	AmountTotal   int64
	Currency      string
	CustomerEmail string

	// Metadata supplied at creation time.
	BookingID   string
	ServiceName string
}

// Paid reports whether the session's payment has completed.
func (s *Session) Paid() bool {
	return s.PaymentStatus == string(stripe.CheckoutSessionPaymentStatusPaid)
}

// CreateSessionInput carries the fields needed to open a checkout session
// for a booking.
type CreateSessionInput struct {
	BookingID   string
	ServiceName string
	UserEmail   string

	// Cost is the service price in major currency units.
	Cost float64
}

// Client talks to the Stripe checkout API.
type Client struct {
	api        *client.API
	siteOrigin string
	logger     *zerolog.Logger
}

// NewClient creates a checkout client using the secret key and site origin
// from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	api := &client.API{}
	api.Init(cfg.Integration.StripeSecretKey, nil)

	return &Client{
		api:        api,
		siteOrigin: cfg.Server.SiteOrigin,
		logger:     logger,
	}
}

// CreateSession opens a hosted checkout session. The booking id and service
// name ride along as session metadata so settlement can resolve the booking
// later without any local state.
func (c *Client) CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error) {
	amount := int64(in.Cost * 100)

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(in.UserEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(Currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Please pay for- %s", in.ServiceName)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.siteOrigin + "/dashboard/payment-success?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(c.siteOrigin + "/dashboard/payment-cancelled"),
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, in.BookingID)
	params.AddMetadata(metadataServiceName, in.ServiceName)

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	c.logger.Info().
		Str("session_id", sess.ID).
		Str("booking_id", in.BookingID).
		Int64("amount", amount).
		Msg("checkout session created")

	return fromStripeSession(sess), nil
}

// GetSession retrieves a checkout session by id.
func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := c.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving checkout session %s: %w", id, err)
	}

	return fromStripeSession(sess), nil
}

func fromStripeSession(sess *stripe.CheckoutSession) *Session {
	out := &Session{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		CustomerEmail: sess.CustomerEmail,
	}

	if sess.PaymentIntent != nil {
		out.TransactionID = sess.PaymentIntent.ID
	}
	if sess.Metadata != nil {
		out.BookingID = sess.Metadata[metadataBookingID]
		out.ServiceName = sess.Metadata[metadataServiceName]
	}

	return out
}
