package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"paypal_checkout/internal/config"
	"paypal_checkout/internal/domain/entities"
)

func TestNewGateway(t *testing.T) {
	t.Run("mock wins", func(t *testing.T) {
		g, err := NewGateway(&config.Config{GatewayMock: true, Gateway: config.GatewayPayPal})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := g.(*MockGateway); !ok {
			t.Fatalf("expected mock gateway, got %T", g)
		}
	})

	t.Run("paypal", func(t *testing.T) {
		cfg := &config.Config{Gateway: config.GatewayPayPal, PayPalClientID: "id", PayPalClientSecret: "secret", GatewayTimeout: time.Second}
		g, err := NewGateway(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := g.(*PayPalGateway); !ok {
			t.Fatalf("expected paypal gateway, got %T", g)
		}
	})

	t.Run("paypal missing credentials returns nil interface", func(t *testing.T) {
		g, err := NewGateway(&config.Config{Gateway: config.GatewayPayPal})
		if !errors.Is(err, ErrMissingPayPalCredentials) || g != nil {
			t.Fatalf("expected nil gateway and credentials error, got %v %v", g, err)
		}
	})

	t.Run("mercadopago missing token", func(t *testing.T) {
		g, err := NewGateway(&config.Config{Gateway: config.GatewayMercadoPago})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) || g != nil {
			t.Fatalf("expected nil gateway and token error, got %v %v", g, err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := NewGateway(&config.Config{Gateway: "stripe"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestMockGateway_CreateThenExecute(t *testing.T) {
	g := NewMockGateway()
	created, err := g.Create(context.Background(), entities.GatewayPayment{
		Intent:       "sale",
		Payer:        &entities.Payer{PaymentMethod: "paypal"},
		Transactions: []entities.Transaction{{Amount: entities.Amount{Currency: "EUR", Total: "5.50"}}},
		RedirectURLs: &entities.RedirectURLs{ReturnURL: "http://local/success", CancelURL: "http://local/cancel"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approval, ok := created.ApprovalURL()
	if !ok || !strings.HasPrefix(approval, "http://local/success?") {
		t.Fatalf("unexpected approval url %q", approval)
	}
	u, _ := url.Parse(approval)
	if u.Query().Get("paymentId") != created.ID {
		t.Fatalf("approval url must carry the payment id: %s", approval)
	}

	executed, err := g.Execute(context.Background(), created.ID, "PAYER-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := executed.Validate()
	if err != nil || !executed.IsApproved() {
		t.Fatalf("expected approved well-formed payment, err=%v state=%s", err, executed.State)
	}
	if v.PayerInfo.PayerID != "PAYER-9" || v.Transaction.Amount.Total != "5.50" {
		t.Fatalf("unexpected executed payment: %+v", v)
	}
	if _, err := entities.NewPaymentRecord(v); err != nil {
		t.Fatalf("mock payment must flatten into a record: %v", err)
	}
}

func TestBuildPreferencePayload(t *testing.T) {
	b, err := buildPreferencePayload(entities.GatewayPayment{
		Transactions: []entities.Transaction{{Amount: entities.Amount{Currency: "BRL", Total: "19.99"}, Description: "order #1"}},
		RedirectURLs: &entities.RedirectURLs{ReturnURL: "http://ret", CancelURL: "http://cancel"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	item := body["items"].([]any)[0].(map[string]any)
	if item["unit_price"] != 19.99 || item["currency_id"] != "BRL" || item["title"] != "order #1" {
		t.Fatalf("unexpected item: %+v", item)
	}
	back := body["back_urls"].(map[string]any)
	if back["success"] != "http://ret" || back["failure"] != "http://cancel" {
		t.Fatalf("unexpected back urls: %+v", back)
	}

	if _, err := buildPreferencePayload(entities.GatewayPayment{}); !errors.Is(err, entities.ErrMalformedGatewayPayment) {
		t.Fatalf("expected ErrMalformedGatewayPayment, got %v", err)
	}
}

func TestFromMPPayment(t *testing.T) {
	var view mpPaymentView
	raw := `{
		"id": 123456789, "status": "approved", "payment_method_id": "pix", "payment_type_id": "bank_transfer",
		"currency_id": "BRL", "transaction_amount": 19.9, "external_reference": "order-1",
		"date_created": "2024-05-01T10:00:00.000-03:00", "date_last_updated": "2024-05-01T10:05:00.000-03:00",
		"payer": {"id": "555", "email": "b@example.com", "first_name": "Ada", "last_name": "L"},
		"fee_details": [{"amount": 0.5}, {"amount": 0.25}]
	}`
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}

	p := fromMPPayment(view, "callback-payer")
	if !p.IsApproved() || p.ID != "123456789" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	v, err := p.Validate()
	if err != nil {
		t.Fatalf("unexpected validate error: %v", err)
	}
	if v.PayerInfo.PayerID != "555" || v.Sale.TransactionFee.Value != "0.75" || v.Transaction.Amount.Total != "19.90" {
		t.Fatalf("unexpected mapping: %+v", v)
	}
	r, err := entities.NewPaymentRecord(v)
	if err != nil {
		t.Fatalf("expected record mapping to succeed: %v", err)
	}
	if r.PaymentMode != "bank_transfer" || r.Cart != "order-1" {
		t.Fatalf("unexpected record: %+v", r)
	}

	view.Payer.ID = nil
	if got := fromMPPayment(view, "callback-payer"); got.Payer.PayerInfo.PayerID != "callback-payer" {
		t.Fatalf("expected callback payer fallback, got %q", got.Payer.PayerInfo.PayerID)
	}
}
