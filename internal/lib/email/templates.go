package email

// Template names an HTML email template under templates/emails/.
type Template string

const (
	TemplateWelcome        Template = "welcome"
	TemplatePaymentReceipt Template = "payment_receipt"
)
