package response

import (
	"paypal_checkout/internal/domain/entities"
	"time"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

const (
	MessagePaymentSaved       = "Payment saved successfully."
	MessagePaymentNotApproved = "Payment not approved."
	MessagePaymentFailed      = "Payment failed."
	MessageMissingParameters  = "Missing paymentId or PayerID."
)

type PaymentResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Payment saved successfully."`
}

func Success(message string) PaymentResponse {
	return PaymentResponse{Status: StatusSuccess, Message: message}
}

func Failure(message string) PaymentResponse {
	return PaymentResponse{Status: StatusFailure, Message: message}
}

type PaymentRecordResponse struct {
	ID               string    `json:"id"`
	PaypalPaymentID  string    `json:"paypal_payment_id"`
	Intent           string    `json:"intent"`
	State            string    `json:"state"`
	Cart             string    `json:"cart,omitempty"`
	PaymentMethod    string    `json:"payment_method"`
	PayerStatus      string    `json:"payer_status,omitempty"`
	PayerID          string    `json:"payer_id"`
	PayerEmail       string    `json:"payer_email,omitempty"`
	PayerFirstName   string    `json:"payer_first_name,omitempty"`
	PayerLastName    string    `json:"payer_last_name,omitempty"`
	Currency         string    `json:"currency"`
	TotalAmount      string    `json:"total_amount"`
	TransactionID    string    `json:"transaction_id"`
	TransactionState string    `json:"transaction_state"`
	TransactionFee   string    `json:"transaction_fee"`
	PaymentMode      string    `json:"payment_mode,omitempty"`
	CreateTime       time.Time `json:"create_time"`
	UpdateTime       time.Time `json:"update_time"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:               r.ID,
		PaypalPaymentID:  r.PaypalPaymentID,
		Intent:           r.Intent,
		State:            r.State,
		Cart:             r.Cart,
		PaymentMethod:    r.PaymentMethod,
		PayerStatus:      r.PayerStatus,
		PayerID:          r.PayerID,
		PayerEmail:       r.PayerEmail,
		PayerFirstName:   r.PayerFirstName,
		PayerLastName:    r.PayerLastName,
		Currency:         r.Currency,
		TotalAmount:      r.TotalAmount.StringFixed(2),
		TransactionID:    r.TransactionID,
		TransactionState: r.TransactionState,
		TransactionFee:   r.TransactionFee.StringFixed(2),
		PaymentMode:      r.PaymentMode,
		CreateTime:       r.CreateTime,
		UpdateTime:       r.UpdateTime,
	}
}
