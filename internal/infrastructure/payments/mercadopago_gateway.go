package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway maps the create/execute flow onto Mercado Pago checkout:
// a preference's init_point is the approval link, and executing fetches the
// payment the payer completed.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	sandbox     bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

type mpPreferenceView struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type mpPaymentView struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	PaymentMethodID   string  `json:"payment_method_id"`
	PaymentTypeID     string  `json:"payment_type_id"`
	CurrencyID        string  `json:"currency_id"`
	Description       string  `json:"description"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	DateCreated       string  `json:"date_created"`
	DateLastUpdated   string  `json:"date_last_updated"`
	Payer             struct {
		ID        json.RawMessage `json:"id"`
		Email     string          `json:"email"`
		FirstName string          `json:"first_name"`
		LastName  string          `json:"last_name"`
	} `json:"payer"`
	FeeDetails []struct {
		Amount float64 `json:"amount"`
	} `json:"fee_details"`
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		sandbox:     strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-"),
	}, nil
}

func (g *MercadoPagoGateway) Create(ctx context.Context, p entities.GatewayPayment) (entities.GatewayPayment, error) {
	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	reqPayload, err := buildPreferencePayload(p)
	if err != nil {
		log.Printf("[payment][gateway] preference payload failed err=%v", err)
		return entities.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] mp create start payload_len=%d", len(reqPayload))

	var req preference.Request
	if err := json.Unmarshal(reqPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return entities.GatewayPayment{}, err
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed err=%v", err)
		return entities.GatewayPayment{}, err
	}

	var view mpPreferenceView
	if err := remarshal(resp, &view); err != nil {
		log.Printf("[payment][gateway] response decode failed err=%v", err)
		return entities.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] mp create success preference_id=%s", view.ID)

	approval := view.InitPoint
	if g.sandbox && view.SandboxInitPoint != "" {
		approval = view.SandboxInitPoint
	}

	// The preference id names the checkout. The payment id only exists once the
	// payer pays and comes back on the return URL as payment_id.
	created := p
	created.ID = view.ID
	created.State = entities.PaymentStateCreated
	created.Links = nil
	if approval != "" {
		created.Links = []entities.Link{{Href: approval, Rel: entities.LinkRelApprovalURL, Method: "REDIRECT"}}
	}
	return created, nil
}

func (g *MercadoPagoGateway) Execute(ctx context.Context, paymentID, payerID string) (entities.GatewayPayment, error) {
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		log.Printf("[payment][gateway] invalid mp payment id=%q", paymentID)
		return entities.GatewayPayment{}, fmt.Errorf("invalid mercado pago payment id %q: %w", paymentID, err)
	}
	log.Printf("[payment][gateway] mp execute start payment_id=%d", id)

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk payment get failed payment_id=%d err=%v", id, err)
		return entities.GatewayPayment{}, err
	}

	var view mpPaymentView
	if err := remarshal(resp, &view); err != nil {
		log.Printf("[payment][gateway] response decode failed err=%v", err)
		return entities.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] mp execute success payment_id=%d status=%s", view.ID, view.Status)

	return fromMPPayment(view, payerID), nil
}

func buildPreferencePayload(p entities.GatewayPayment) ([]byte, error) {
	if len(p.Transactions) == 0 {
		return nil, fmt.Errorf("%w: empty transaction list", entities.ErrMalformedGatewayPayment)
	}
	tx := p.Transactions[0]
	total, err := decimal.NewFromString(tx.Amount.Total)
	if err != nil {
		return nil, err
	}
	title := tx.Description
	if title == "" {
		title = "Payment"
	}

	body := map[string]any{
		"items": []map[string]any{{
			"title":       title,
			"description": tx.Description,
			"quantity":    1,
			"unit_price":  total.InexactFloat64(),
			"currency_id": tx.Amount.Currency,
		}},
		"auto_return": "approved",
	}
	if p.RedirectURLs != nil {
		body["back_urls"] = map[string]string{
			"success": p.RedirectURLs.ReturnURL,
			"pending": p.RedirectURLs.ReturnURL,
			"failure": p.RedirectURLs.CancelURL,
		}
	}
	return json.Marshal(body)
}

func fromMPPayment(v mpPaymentView, payerID string) entities.GatewayPayment {
	fee := decimal.Zero
	for _, f := range v.FeeDetails {
		fee = fee.Add(decimal.NewFromFloat(f.Amount))
	}

	mpPayerID := payerID
	if s := strings.Trim(strings.TrimSpace(string(v.Payer.ID)), `"`); s != "" && s != "null" {
		mpPayerID = s
	}
	id := strconv.FormatInt(v.ID, 10)

	return entities.GatewayPayment{
		ID:     id,
		Intent: entities.PaymentIntentSale,
		State:  v.Status,
		Cart:   v.ExternalReference,
		Payer: &entities.Payer{
			PaymentMethod: v.PaymentMethodID,
			PayerInfo: &entities.PayerInfo{
				PayerID:   mpPayerID,
				Email:     v.Payer.Email,
				FirstName: v.Payer.FirstName,
				LastName:  v.Payer.LastName,
			},
		},
		Transactions: []entities.Transaction{{
			Amount: entities.Amount{
				Currency: v.CurrencyID,
				Total:    decimal.NewFromFloat(v.TransactionAmount).StringFixed(2),
			},
			Description: v.Description,
			RelatedResources: []entities.RelatedResource{{
				Sale: &entities.Sale{
					ID:             id,
					State:          v.Status,
					PaymentMode:    v.PaymentTypeID,
					TransactionFee: &entities.CurrencyValue{Currency: v.CurrencyID, Value: fee.StringFixed(2)},
				},
			}},
		}},
		CreateTime: v.DateCreated,
		UpdateTime: v.DateLastUpdated,
	}
}

// remarshal converts SDK responses through their JSON form.
func remarshal(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
