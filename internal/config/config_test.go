package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "PAYMENT_GATEWAY", "PAYMENT_GATEWAY_MOCK", "GATEWAY_TIMEOUT", "PAYPAL_MODE", "PAYPAL_BASE_URL",
		"PAYMENT_SUCCESS_URL", "PAYMENT_CANCEL_URL", "FRONTEND_SUCCESS_URL", "STORE_DRIVER", "KAFKA_BROKERS", "KAFKA_TOPIC", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, GatewayPayPal, cfg.Gateway)
	assert.False(t, cfg.GatewayMock)
	assert.Equal(t, 10*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "https://api.sandbox.paypal.com", cfg.PayPalAPIBaseURL())
	assert.Equal(t, "http://localhost:8081/api/paypal/payment/success", cfg.PaymentSuccessURL)
	assert.Equal(t, "http://localhost:8081/api/paypal/payment/cancel", cfg.PaymentCancelURL)
	assert.Equal(t, "http://localhost:3000/payment/success", cfg.FrontendSuccessURL)
	assert.Equal(t, StoreDynamoDB, cfg.StoreDriver)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "payments.recorded", cfg.KafkaTopic)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY", "MercadoPago")
	t.Setenv("PAYMENT_GATEWAY_MOCK", " yes ")
	t.Setenv("GATEWAY_TIMEOUT", "3s")
	t.Setenv("PAYPAL_MODE", "live")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("DB_HOST", "db")

	cfg := Load()

	assert.Equal(t, GatewayMercadoPago, cfg.Gateway)
	assert.True(t, cfg.GatewayMock)
	assert.Equal(t, 3*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "https://api.paypal.com", cfg.PayPalAPIBaseURL())
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Contains(t, cfg.DSN(), "host=db ")

	t.Setenv("PAYPAL_BASE_URL", "http://127.0.0.1:9000/")
	assert.Equal(t, "http://127.0.0.1:9000", Load().PayPalAPIBaseURL())
}

func TestParseDuration_Fallback(t *testing.T) {
	assert.Equal(t, time.Second, parseDuration("nope", time.Second))
	assert.Equal(t, time.Second, parseDuration("-5s", time.Second))
	assert.Equal(t, 2*time.Minute, parseDuration("2m", time.Second))
}

func TestPayerIDRequired(t *testing.T) {
	assert.True(t, (&Config{Gateway: GatewayPayPal}).PayerIDRequired())
	assert.False(t, (&Config{Gateway: GatewayMercadoPago}).PayerIDRequired())
	assert.True(t, (&Config{Gateway: GatewayMercadoPago, GatewayMock: true}).PayerIDRequired())
}
