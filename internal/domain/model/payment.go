package model

// PaymentStatus is the transaction_status reported by the payment gateway.
type PaymentStatus string

const (
	PaymentCapture    PaymentStatus = "capture"
	PaymentSettlement PaymentStatus = "settlement"
	PaymentPending    PaymentStatus = "pending"
	PaymentCancel     PaymentStatus = "cancel"
	PaymentDeny       PaymentStatus = "deny"
	PaymentExpire     PaymentStatus = "expire"
)

// PaymentNotification is the webhook payload sent by the gateway.
type PaymentNotification struct {
	OrderID           string
	TransactionStatus PaymentStatus
	StatusCode        string
	GrossAmount       string
	SignatureKey      string
}

// Outcome maps a gateway status to the order change it causes.
// ok is false for statuses that leave the order untouched.
func (s PaymentStatus) Outcome() (change StatusChange, ok bool) {
	switch s {
	case PaymentCapture, PaymentSettlement:
		return StatusChange{To: OrderStatusProcessing, Stock: StockDecrement}, true
	case PaymentCancel, PaymentDeny, PaymentExpire:
		return StatusChange{To: OrderStatusCanceled, Stock: StockUnchanged}, true
	default:
		return StatusChange{}, false
	}
}
