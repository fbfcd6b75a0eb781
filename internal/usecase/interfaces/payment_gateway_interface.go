package interfaces

import (
	"context"
	"paypal_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (PayPal, or Mercado Pago).
//
// Both calls are single-attempt; timeouts belong to the implementation.
type IPaymentGateway interface {
	Create(ctx context.Context, payment entities.GatewayPayment) (entities.GatewayPayment, error)
	Execute(ctx context.Context, paymentID, payerID string) (entities.GatewayPayment, error)
}
