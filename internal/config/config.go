package config

import (
	"os"
	"strings"
	"time"
)

const (
	GatewayPayPal      = "paypal"
	GatewayMercadoPago = "mercadopago"

	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"

	PayPalModeSandbox = "sandbox"
	PayPalModeLive    = "live"
)

// Config is read from the environment; cmd/api autoloads .env first.
type Config struct {
	Port string

	Gateway        string
	GatewayMock    bool
	GatewayTimeout time.Duration

	PayPalClientID     string
	PayPalClientSecret string
	PayPalMode         string
	PayPalBaseURL      string

	MercadoPagoAccessToken string

	PaymentSuccessURL  string
	PaymentCancelURL   string
	FrontendSuccessURL string
	CORSAllowedOrigins []string

	StoreDriver        string
	PaymentsTable      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	KafkaBrokers []string
	KafkaTopic   string
}

func Load() *Config {
	return &Config{
		Port: getenvDefault("PORT", "8081"),

		Gateway:        strings.ToLower(getenvDefault("PAYMENT_GATEWAY", GatewayPayPal)),
		GatewayMock:    isEnabled(os.Getenv("PAYMENT_GATEWAY_MOCK")),
		GatewayTimeout: parseDuration(os.Getenv("GATEWAY_TIMEOUT"), 10*time.Second),

		PayPalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		PayPalMode:         strings.ToLower(getenvDefault("PAYPAL_MODE", PayPalModeSandbox)),
		PayPalBaseURL:      os.Getenv("PAYPAL_BASE_URL"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),

		PaymentSuccessURL:  getenvDefault("PAYMENT_SUCCESS_URL", "http://localhost:8081/api/paypal/payment/success"),
		PaymentCancelURL:   getenvDefault("PAYMENT_CANCEL_URL", "http://localhost:8081/api/paypal/payment/cancel"),
		FrontendSuccessURL: getenvDefault("FRONTEND_SUCCESS_URL", "http://localhost:3000/payment/success"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		StoreDriver:   strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		PaymentsTable: getenvDefault("PAYMENTS_TABLE", "payments"),
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		DBHost:             getenvDefault("DB_HOST", "localhost"),
		DBPort:             getenvDefault("DB_PORT", "5432"),
		DBUser:             getenvDefault("DB_USER", "postgres"),
		DBPassword:         getenvDefault("DB_PASSWORD", "postgres"),
		DBName:             getenvDefault("DB_NAME", "payments"),
		DBSSLMode:          getenvDefault("DB_SSLMODE", "disable"),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getenvDefault("KAFKA_TOPIC", "payments.recorded"),
	}
}

// PayerIDRequired reports whether the gateway's return query carries a payer
// id that execute needs. Mercado Pago identifies the payment alone.
func (c *Config) PayerIDRequired() bool {
	return c.GatewayMock || c.Gateway != GatewayMercadoPago
}

// PayPalAPIBaseURL resolves the REST endpoint for the configured mode.
func (c *Config) PayPalAPIBaseURL() string {
	if c.PayPalBaseURL != "" {
		return strings.TrimRight(c.PayPalBaseURL, "/")
	}
	if c.PayPalMode == PayPalModeLive {
		return "https://api.paypal.com"
	}
	return "https://api.sandbox.paypal.com"
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
