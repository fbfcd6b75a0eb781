package entities

import (
	"errors"
	"fmt"
)

const (
	PaymentIntentSale = "sale"

	// PaymentStateApproved is compared case-sensitively.
	PaymentStateApproved = "approved"
	PaymentStateCreated  = "created"

	LinkRelApprovalURL = "approval_url"
)

var ErrMalformedGatewayPayment = errors.New("malformed gateway payment")

// GatewayPayment is the gateway-native payment object (PayPal REST v1
// "payment" resource). It is used both as the create request and as the
// create/execute response.
type GatewayPayment struct {
	ID           string        `json:"id,omitempty"`
	Intent       string        `json:"intent,omitempty"`
	State        string        `json:"state,omitempty"`
	Cart         string        `json:"cart,omitempty"`
	Payer        *Payer        `json:"payer,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
	RedirectURLs *RedirectURLs `json:"redirect_urls,omitempty"`
	Links        []Link        `json:"links,omitempty"`
	CreateTime   string        `json:"create_time,omitempty"`
	UpdateTime   string        `json:"update_time,omitempty"`
}

type Payer struct {
	PaymentMethod string     `json:"payment_method,omitempty"`
	Status        string     `json:"status,omitempty"`
	PayerInfo     *PayerInfo `json:"payer_info,omitempty"`
}

type PayerInfo struct {
	PayerID   string `json:"payer_id,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type Transaction struct {
	Amount           Amount            `json:"amount"`
	Description      string            `json:"description,omitempty"`
	RelatedResources []RelatedResource `json:"related_resources,omitempty"`
}

// Amount.Total is a decimal string with two fraction digits.
type Amount struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

type RelatedResource struct {
	Sale *Sale `json:"sale,omitempty"`
}

// Sale is the gateway's record of the charge against an approved payment.
type Sale struct {
	ID             string         `json:"id,omitempty"`
	State          string         `json:"state,omitempty"`
	PaymentMode    string         `json:"payment_mode,omitempty"`
	TransactionFee *CurrencyValue `json:"transaction_fee,omitempty"`
}

type CurrencyValue struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type RedirectURLs struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// ApprovalURL returns the link the payer must visit to authorize the payment.
func (p GatewayPayment) ApprovalURL() (string, bool) {
	for _, l := range p.Links {
		if l.Rel == LinkRelApprovalURL {
			return l.Href, true
		}
	}
	return "", false
}

func (p GatewayPayment) IsApproved() bool {
	return p.State == PaymentStateApproved
}

// ValidGatewayPayment is a gateway payment known to carry payer info, a
// first transaction and a first related sale.
type ValidGatewayPayment struct {
	Payment     GatewayPayment
	Payer       Payer
	PayerInfo   PayerInfo
	Transaction Transaction
	Sale        Sale
}

// Validate checks the single-transaction/single-sale shape that records are
// flattened from. Extra transactions or resources beyond the first are ignored.
func (p GatewayPayment) Validate() (ValidGatewayPayment, error) {
	if p.Payer == nil {
		return ValidGatewayPayment{}, fmt.Errorf("%w: missing payer", ErrMalformedGatewayPayment)
	}
	if p.Payer.PayerInfo == nil {
		return ValidGatewayPayment{}, fmt.Errorf("%w: missing payer info", ErrMalformedGatewayPayment)
	}
	if len(p.Transactions) == 0 {
		return ValidGatewayPayment{}, fmt.Errorf("%w: empty transaction list", ErrMalformedGatewayPayment)
	}
	tx := p.Transactions[0]
	if len(tx.RelatedResources) == 0 {
		return ValidGatewayPayment{}, fmt.Errorf("%w: empty related resources", ErrMalformedGatewayPayment)
	}
	sale := tx.RelatedResources[0].Sale
	if sale == nil {
		return ValidGatewayPayment{}, fmt.Errorf("%w: first related resource is not a sale", ErrMalformedGatewayPayment)
	}
	if sale.TransactionFee == nil {
		return ValidGatewayPayment{}, fmt.Errorf("%w: sale without transaction fee", ErrMalformedGatewayPayment)
	}

	return ValidGatewayPayment{
		Payment:     p,
		Payer:       *p.Payer,
		PayerInfo:   *p.Payer.PayerInfo,
		Transaction: tx,
		Sale:        *sale,
	}, nil
}
