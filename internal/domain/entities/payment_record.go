package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is the flattened snapshot of an approved gateway payment.
//
// Records are write-once: the service never updates or deletes them.
// ID is assigned by the record store on insert.
type PaymentRecord struct {
	ID               string          `json:"id"`
	PaypalPaymentID  string          `json:"paypal_payment_id"`
	Intent           string          `json:"intent"`
	State            string          `json:"state"`
	Cart             string          `json:"cart"`
	PaymentMethod    string          `json:"payment_method"`
	PayerStatus      string          `json:"payer_status"`
	PayerID          string          `json:"payer_id"`
	PayerEmail       string          `json:"payer_email"`
	PayerFirstName   string          `json:"payer_first_name"`
	PayerLastName    string          `json:"payer_last_name"`
	Currency         string          `json:"currency"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionID    string          `json:"transaction_id"`
	TransactionState string          `json:"transaction_state"`
	TransactionFee   decimal.Decimal `json:"transaction_fee"`
	PaymentMode      string          `json:"payment_mode"`
	CreateTime       time.Time       `json:"create_time"`
	UpdateTime       time.Time       `json:"update_time"`
}

// NewPaymentRecord flattens a validated gateway payment. Any unparsable
// amount or timestamp fails the whole record.
func NewPaymentRecord(v ValidGatewayPayment) (PaymentRecord, error) {
	total, err := decimal.NewFromString(v.Transaction.Amount.Total)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("%w: total %q: %v", ErrMalformedGatewayPayment, v.Transaction.Amount.Total, err)
	}
	fee, err := decimal.NewFromString(v.Sale.TransactionFee.Value)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("%w: transaction fee %q: %v", ErrMalformedGatewayPayment, v.Sale.TransactionFee.Value, err)
	}
	createTime, err := time.Parse(time.RFC3339, v.Payment.CreateTime)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("%w: create_time %q: %v", ErrMalformedGatewayPayment, v.Payment.CreateTime, err)
	}
	updateTime, err := time.Parse(time.RFC3339, v.Payment.UpdateTime)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("%w: update_time %q: %v", ErrMalformedGatewayPayment, v.Payment.UpdateTime, err)
	}

	return PaymentRecord{
		PaypalPaymentID:  v.Payment.ID,
		Intent:           v.Payment.Intent,
		State:            v.Payment.State,
		Cart:             v.Payment.Cart,
		PaymentMethod:    v.Payer.PaymentMethod,
		PayerStatus:      v.Payer.Status,
		PayerID:          v.PayerInfo.PayerID,
		PayerEmail:       v.PayerInfo.Email,
		PayerFirstName:   v.PayerInfo.FirstName,
		PayerLastName:    v.PayerInfo.LastName,
		Currency:         v.Transaction.Amount.Currency,
		TotalAmount:      total,
		TransactionID:    v.Sale.ID,
		TransactionState: v.Sale.State,
		TransactionFee:   fee,
		PaymentMode:      v.Sale.PaymentMode,
		CreateTime:       createTime,
		UpdateTime:       updateTime,
	}, nil
}
