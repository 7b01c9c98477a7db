package email

import "fmt"

// SendWelcomeEmail sends the onboarding email to a newly created user.
func (c *Client) SendWelcomeEmail(to, name string) error {
	return c.SendEmail(to, "Welcome to Wedora", TemplateWelcome, map[string]string{
		"Name": name,
	})
}

// SendPaymentReceiptEmail sends the settlement receipt after a booking has
// been paid.
func (c *Client) SendPaymentReceiptEmail(to, serviceName, trackingID string, amount float64, currency string) error {
	return c.SendEmail(to, "Your Wedora payment receipt", TemplatePaymentReceipt, map[string]string{
		"ServiceName": serviceName,
		"TrackingID":  trackingID,
		"Amount":      fmt.Sprintf("%.2f", amount),
		"Currency":    currency,
	})
}
