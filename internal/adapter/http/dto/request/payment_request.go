package request

import (
	"paypal_checkout/internal/usecase"

	"github.com/shopspring/decimal"
)

// PaymentCreationRequest is the payload accepted by POST /payment/create.
// Values reach the gateway as sent; the gateway decides what it accepts.
type PaymentCreationRequest struct {
	Method      string          `json:"method" binding:"required" example:"paypal"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"19.99"`
	Currency    string          `json:"currency" binding:"required" example:"USD"`
	Description string          `json:"description" example:"Order #1"`
}

func (r PaymentCreationRequest) ToCommand() usecase.CreatePaymentCommand {
	return usecase.CreatePaymentCommand{
		Method:      r.Method,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
	}
}
