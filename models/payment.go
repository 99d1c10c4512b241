package models

// PaymentMethodInfo is the sanitized view of a stored card returned to the
// dashboard; the full payment method lives in Stripe.
type PaymentMethodInfo struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int64  `json:"expMonth"`
	ExpYear   int64  `json:"expYear"`
	IsDefault bool   `json:"isDefault"`
}

// AttachPaymentMethodRequest adds a Stripe payment method to the account.
type AttachPaymentMethodRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	SetDefault      bool   `json:"setDefault"`
}
