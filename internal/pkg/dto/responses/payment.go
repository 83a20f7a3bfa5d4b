package responses

import "time"

type CreatePaymentOrder struct {
	ConsultationID string `json:"consultation_id"`
	OrderID        string `json:"order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
}

type VerifyPayment struct {
	ConsultationID string     `json:"consultation_id"`
	Paid           bool       `json:"paid"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

type PaymentDetails struct {
	ConsultationID string     `json:"consultation_id"`
	Paid           bool       `json:"paid"`
	OrderID        string     `json:"order_id,omitempty"`
	PaymentID      string     `json:"payment_id,omitempty"`
	Amount         int64      `json:"amount,omitempty"`
	Currency       string     `json:"currency,omitempty"`
	Status         string     `json:"status,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}
