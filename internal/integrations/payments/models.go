package payments

// SessionRequest payload for opening a payment session
type SessionRequest struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`   // whole ISK
	Currency  string `json:"currency"` // always "ISK"
	ReturnURL string `json:"returnUrl"`
}

// Session an open payment session the customer is redirected to
type Session struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

// WebhookEvent payload posted back by the provider after payment
type WebhookEvent struct {
	Reference string `json:"reference"`
	SessionID string `json:"sessionId"`
	Outcome   string `json:"outcome"` // "paid" or "failed"
}

// Paid reports whether the event signals a successful payment
func (e *WebhookEvent) Paid() bool {
	return e.Outcome == "paid"
}
