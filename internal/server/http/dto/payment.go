package dto

import "github.com/polkiloo/panganku/internal/domain/model"

// PaymentNotification is the gateway webhook body.
type PaymentNotification struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

// ToModel converts the webhook body.
func (p PaymentNotification) ToModel() model.PaymentNotification {
	return model.PaymentNotification{
		OrderID:           p.OrderID,
		TransactionStatus: model.PaymentStatus(p.TransactionStatus),
		StatusCode:        p.StatusCode,
		GrossAmount:       p.GrossAmount,
		SignatureKey:      p.SignatureKey,
	}
}

// PaymentResponse acknowledges a webhook delivery.
type PaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
	Status  string `json:"status,omitempty"`
}
