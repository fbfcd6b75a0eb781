package payments

import (
	"context"
	"log"
	"net/url"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockGateway is an in-process gateway for local runs. Created payments are
// approved on execute; the approval link points straight at the configured
// success callback.
type MockGateway struct {
	mu      sync.Mutex
	created map[string]entities.GatewayPayment
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled")
	return &MockGateway{created: map[string]entities.GatewayPayment{}}
}

func (g *MockGateway) Create(_ context.Context, p entities.GatewayPayment) (entities.GatewayPayment, error) {
	id := "PAY-MOCK-" + strings.ToUpper(uuid.NewString()[:8])
	now := time.Now().UTC().Format(time.RFC3339)

	created := p
	created.ID = id
	created.State = entities.PaymentStateCreated
	created.CreateTime = now
	created.UpdateTime = now
	created.Links = []entities.Link{{Href: mockApprovalURL(p.RedirectURLs, id), Rel: entities.LinkRelApprovalURL, Method: "REDIRECT"}}

	g.mu.Lock()
	g.created[id] = created
	g.mu.Unlock()

	log.Printf("[payment][gateway] mock create success payment_id=%s", id)
	return created, nil
}

func (g *MockGateway) Execute(_ context.Context, paymentID, payerID string) (entities.GatewayPayment, error) {
	g.mu.Lock()
	p, ok := g.created[paymentID]
	g.mu.Unlock()

	if !ok {
		now := time.Now().UTC().Format(time.RFC3339)
		p = entities.GatewayPayment{
			ID:           paymentID,
			Intent:       entities.PaymentIntentSale,
			Payer:        &entities.Payer{PaymentMethod: "paypal"},
			Transactions: []entities.Transaction{{Amount: entities.Amount{Currency: "USD", Total: "0.00"}}},
			CreateTime:   now,
		}
	}

	executed := p
	executed.State = entities.PaymentStateApproved
	executed.UpdateTime = time.Now().UTC().Format(time.RFC3339)
	executed.Links = nil
	method := "paypal"
	if p.Payer != nil && p.Payer.PaymentMethod != "" {
		method = p.Payer.PaymentMethod
	}
	executed.Payer = &entities.Payer{
		PaymentMethod: method,
		Status:        "VERIFIED",
		PayerInfo:     &entities.PayerInfo{PayerID: payerID, Email: "buyer@example.com", FirstName: "Mock", LastName: "Buyer"},
	}
	txs := make([]entities.Transaction, len(p.Transactions))
	copy(txs, p.Transactions)
	for i := range txs {
		txs[i].RelatedResources = []entities.RelatedResource{{
			Sale: &entities.Sale{
				ID:             "SALE-MOCK-" + strings.ToUpper(uuid.NewString()[:8]),
				State:          "completed",
				PaymentMode:    "INSTANT_TRANSFER",
				TransactionFee: &entities.CurrencyValue{Currency: txs[i].Amount.Currency, Value: "0.00"},
			},
		}}
	}
	executed.Transactions = txs

	log.Printf("[payment][gateway] mock execute success payment_id=%s payer_id=%s", paymentID, payerID)
	return executed, nil
}

func mockApprovalURL(redirects *entities.RedirectURLs, paymentID string) string {
	base := "http://localhost:8081/api/paypal/payment/success"
	if redirects != nil && redirects.ReturnURL != "" {
		base = redirects.ReturnURL
	}
	q := url.Values{}
	q.Set("paymentId", paymentID)
	q.Set("token", "EC-MOCK")
	q.Set("PayerID", "PAYER-MOCK")
	return base + "?" + q.Encode()
}
