package interfaces

import (
	"context"
	"paypal_checkout/internal/domain/entities"
)

type IEventPublisher interface {
	PublishPaymentRecorded(ctx context.Context, r entities.PaymentRecord) error
}
