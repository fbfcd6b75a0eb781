package interfaces

import (
	"context"
	"paypal_checkout/internal/domain/entities"
)

// IPaymentRecordRepository persists write-once payment records.
//
// GetByID returns the zero record (empty ID) when nothing matches.

type IPaymentRecordRepository interface {
	Save(ctx context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
}
