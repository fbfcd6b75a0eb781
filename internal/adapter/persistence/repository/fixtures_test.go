package repository

import (
	"time"

	"paypal_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func sampleRecord() entities.PaymentRecord {
	return entities.PaymentRecord{
		PaypalPaymentID:  "PAY-1",
		Intent:           "sale",
		State:            "approved",
		Cart:             "CART-9",
		PaymentMethod:    "paypal",
		PayerStatus:      "VERIFIED",
		PayerID:          "PAYER-1",
		PayerEmail:       "buyer@example.com",
		PayerFirstName:   "Ada",
		PayerLastName:    "Lovelace",
		Currency:         "USD",
		TotalAmount:      decimal.RequireFromString("19.99"),
		TransactionID:    "SALE-1",
		TransactionState: "completed",
		TransactionFee:   decimal.RequireFromString("0.88"),
		PaymentMode:      "INSTANT_TRANSFER",
		CreateTime:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdateTime:       time.Date(2024, 5, 1, 10, 2, 30, 0, time.UTC),
	}
}
