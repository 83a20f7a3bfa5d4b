package contracts

import (
	"context"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/requests"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, sessionData, consultationID string) (*responses.CreatePaymentOrder, error)
	Verify(ctx context.Context, sessionData, consultationID string, request *requests.VerifyPaymentRequest) (*responses.VerifyPayment, error)
	Details(ctx context.Context, sessionData, consultationID string) (*responses.PaymentDetails, error)
}

// PaymentGatewayService is the boundary to the external payment processor.
// Order and payment references are issued by the gateway, never by this core.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (orderID string, err error)
	VerifySignature(orderID, paymentID, signature string) bool
}
