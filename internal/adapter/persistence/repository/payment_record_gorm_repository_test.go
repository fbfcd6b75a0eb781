package repository

import (
	"context"
	"testing"

	"paypal_checkout/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGormRepository(t *testing.T) *PaymentRecordGormRepository {
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	require.NoError(t, MigratePaymentRecords(db))
	return NewPaymentRecordGormRepository(db)
}

func TestPaymentRecordGormRepository_SaveAndGet(t *testing.T) {
	repo := setupGormRepository(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleRecord())
	require.NoError(t, err)
	require.Len(t, saved.ID, 36)

	found, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, "PAY-1", found.PaypalPaymentID)
	assert.Equal(t, "PAYER-1", found.PayerID)
	assert.Equal(t, "INSTANT_TRANSFER", found.PaymentMode)
	assert.True(t, found.TotalAmount.Equal(saved.TotalAmount), "total %s", found.TotalAmount)
	assert.True(t, found.TransactionFee.Equal(saved.TransactionFee), "fee %s", found.TransactionFee)
	assert.True(t, found.CreateTime.Equal(saved.CreateTime))
}

func TestPaymentRecordGormRepository_GetByID_NotFound(t *testing.T) {
	repo := setupGormRepository(t)

	found, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Empty(t, found.ID)
}

func TestPaymentRecordGormRepository_SameGatewayPaymentTwice(t *testing.T) {
	repo := setupGormRepository(t)
	ctx := context.Background()

	first, err := repo.Save(ctx, sampleRecord())
	require.NoError(t, err)
	second, err := repo.Save(ctx, sampleRecord())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
