package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")

const (
	paypalTokenPath   = "/v1/oauth2/token"
	paypalPaymentPath = "/v1/payments/payment"
)

// PayPalAPIError is a non-2xx answer from the PayPal REST API.
type PayPalAPIError struct {
	StatusCode int
	Name       string `json:"name"`
	Message    string `json:"message"`
	DebugID    string `json:"debug_id"`
}

func (e *PayPalAPIError) Error() string {
	if e.Name == "" && e.Message == "" {
		return fmt.Sprintf("paypal: status %d", e.StatusCode)
	}
	return fmt.Sprintf("paypal: status %d %s: %s (debug_id=%s)", e.StatusCode, e.Name, e.Message, e.DebugID)
}

// PayPalGateway talks to the PayPal REST v1 payments API. The access token is
// fetched and refreshed by the oauth2 client-credentials transport.
type PayPalGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(clientID, clientSecret, baseURL string, timeout time.Duration) (*PayPalGateway, error) {
	if clientID == "" || clientSecret == "" {
		log.Printf("[payment][gateway] missing paypal credentials")
		return nil, ErrMissingPayPalCredentials
	}
	baseURL = strings.TrimRight(baseURL, "/")

	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + paypalTokenPath,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	// The token request uses the same bounded client as the API calls.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})
	client := cc.Client(ctx)
	client.Timeout = timeout

	log.Printf("[payment][gateway] PayPal client initialized base_url=%s", baseURL)
	return &PayPalGateway{baseURL: baseURL, client: client}, nil
}

func (g *PayPalGateway) Create(ctx context.Context, payment entities.GatewayPayment) (entities.GatewayPayment, error) {
	log.Printf("[payment][gateway] paypal create start intent=%s transactions=%d", payment.Intent, len(payment.Transactions))

	var created entities.GatewayPayment
	if err := g.do(ctx, http.MethodPost, paypalPaymentPath, payment, &created); err != nil {
		log.Printf("[payment][gateway] paypal create failed err=%v", err)
		return entities.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] paypal create success payment_id=%s state=%s", created.ID, created.State)
	return created, nil
}

func (g *PayPalGateway) Execute(ctx context.Context, paymentID, payerID string) (entities.GatewayPayment, error) {
	log.Printf("[payment][gateway] paypal execute start payment_id=%s", paymentID)

	path := paypalPaymentPath + "/" + url.PathEscape(paymentID) + "/execute"
	body := map[string]string{"payer_id": payerID}

	var executed entities.GatewayPayment
	if err := g.do(ctx, http.MethodPost, path, body, &executed); err != nil {
		log.Printf("[payment][gateway] paypal execute failed payment_id=%s err=%v", paymentID, err)
		return entities.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] paypal execute success payment_id=%s state=%s", executed.ID, executed.State)
	return executed, nil
}

func (g *PayPalGateway) do(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &PayPalAPIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		return apiErr
	}
	return json.Unmarshal(raw, out)
}
