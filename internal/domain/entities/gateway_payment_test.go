package entities

import (
	"errors"
	"testing"
	"time"
)

func approvedPayment() GatewayPayment {
	return GatewayPayment{
		ID:     "PAY-1",
		Intent: PaymentIntentSale,
		State:  PaymentStateApproved,
		Cart:   "CART-9",
		Payer: &Payer{
			PaymentMethod: "paypal",
			Status:        "VERIFIED",
			PayerInfo: &PayerInfo{
				PayerID:   "PAYER-1",
				Email:     "buyer@example.com",
				FirstName: "Ada",
				LastName:  "Lovelace",
			},
		},
		Transactions: []Transaction{{
			Amount:      Amount{Currency: "USD", Total: "19.99"},
			Description: "order #1",
			RelatedResources: []RelatedResource{{
				Sale: &Sale{
					ID:             "SALE-1",
					State:          "completed",
					PaymentMode:    "INSTANT_TRANSFER",
					TransactionFee: &CurrencyValue{Currency: "USD", Value: "0.88"},
				},
			}},
		}},
		CreateTime: "2024-05-01T10:00:00Z",
		UpdateTime: "2024-05-01T10:02:30-03:00",
	}
}

func TestGatewayPayment_ApprovalURL(t *testing.T) {
	p := GatewayPayment{Links: []Link{
		{Href: "https://api.sandbox.paypal.com/v1/payments/payment/PAY-1", Rel: "self"},
		{Href: "https://www.sandbox.paypal.com/cgi-bin/webscr?token=EC-1", Rel: "approval_url", Method: "REDIRECT"},
		{Href: "https://api.sandbox.paypal.com/v1/payments/payment/PAY-1/execute", Rel: "execute"},
	}}

	url, ok := p.ApprovalURL()
	if !ok || url != "https://www.sandbox.paypal.com/cgi-bin/webscr?token=EC-1" {
		t.Fatalf("unexpected approval url %q ok=%v", url, ok)
	}

	if _, ok := (GatewayPayment{Links: []Link{{Href: "x", Rel: "APPROVAL_URL"}}}).ApprovalURL(); ok {
		t.Fatalf("rel match must be exact")
	}
	if _, ok := (GatewayPayment{}).ApprovalURL(); ok {
		t.Fatalf("expected no approval url")
	}
}

func TestGatewayPayment_IsApproved(t *testing.T) {
	cases := map[string]bool{
		"approved": true,
		"Approved": false,
		"APPROVED": false,
		"pending":  false,
		"created":  false,
		"":         false,
	}
	for state, want := range cases {
		if got := (GatewayPayment{State: state}).IsApproved(); got != want {
			t.Fatalf("state %q: expected %v got %v", state, want, got)
		}
	}
}

func TestGatewayPayment_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := approvedPayment().Validate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Sale.ID != "SALE-1" || v.PayerInfo.PayerID != "PAYER-1" || v.Transaction.Amount.Total != "19.99" {
			t.Fatalf("unexpected validated payment: %+v", v)
		}
	})

	cases := []struct {
		name   string
		mutate func(p *GatewayPayment)
	}{
		{name: "missing payer", mutate: func(p *GatewayPayment) { p.Payer = nil }},
		{name: "missing payer info", mutate: func(p *GatewayPayment) { p.Payer.PayerInfo = nil }},
		{name: "empty transactions", mutate: func(p *GatewayPayment) { p.Transactions = nil }},
		{name: "empty related resources", mutate: func(p *GatewayPayment) { p.Transactions[0].RelatedResources = nil }},
		{name: "resource without sale", mutate: func(p *GatewayPayment) { p.Transactions[0].RelatedResources[0].Sale = nil }},
		{name: "sale without fee", mutate: func(p *GatewayPayment) { p.Transactions[0].RelatedResources[0].Sale.TransactionFee = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := approvedPayment()
			tc.mutate(&p)
			if _, err := p.Validate(); !errors.Is(err, ErrMalformedGatewayPayment) {
				t.Fatalf("expected ErrMalformedGatewayPayment, got %v", err)
			}
		})
	}
}

func TestNewPaymentRecord(t *testing.T) {
	v, err := approvedPayment().Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := NewPaymentRecord(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "" {
		t.Fatalf("id must be left for the store, got %q", r.ID)
	}
	if r.PaypalPaymentID != "PAY-1" || r.Intent != "sale" || r.State != "approved" || r.Cart != "CART-9" {
		t.Fatalf("unexpected payment fields: %+v", r)
	}
	if r.PaymentMethod != "paypal" || r.PayerStatus != "VERIFIED" || r.PayerID != "PAYER-1" ||
		r.PayerEmail != "buyer@example.com" || r.PayerFirstName != "Ada" || r.PayerLastName != "Lovelace" {
		t.Fatalf("unexpected payer fields: %+v", r)
	}
	if r.Currency != "USD" || r.TotalAmount.StringFixed(2) != "19.99" {
		t.Fatalf("unexpected amount fields: %+v", r)
	}
	if r.TransactionID != "SALE-1" || r.TransactionState != "completed" || r.TransactionFee.StringFixed(2) != "0.88" || r.PaymentMode != "INSTANT_TRANSFER" {
		t.Fatalf("unexpected sale fields: %+v", r)
	}
	if !r.CreateTime.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected create time: %v", r.CreateTime)
	}
	if !r.UpdateTime.Equal(time.Date(2024, 5, 1, 13, 2, 30, 0, time.UTC)) {
		t.Fatalf("offset must be honoured, got %v", r.UpdateTime)
	}

	bad := []func(p *GatewayPayment){
		func(p *GatewayPayment) { p.Transactions[0].Amount.Total = "abc" },
		func(p *GatewayPayment) { p.Transactions[0].RelatedResources[0].Sale.TransactionFee.Value = "" },
		func(p *GatewayPayment) { p.CreateTime = "2024-05-01 10:00:00" },
		func(p *GatewayPayment) { p.UpdateTime = "" },
	}
	for i, mutate := range bad {
		p := approvedPayment()
		mutate(&p)
		v, err := p.Validate()
		if err != nil {
			t.Fatalf("case %d: unexpected validate error: %v", i, err)
		}
		if _, err := NewPaymentRecord(v); !errors.Is(err, ErrMalformedGatewayPayment) {
			t.Fatalf("case %d: expected ErrMalformedGatewayPayment, got %v", i, err)
		}
	}
}
