package payments

import (
	"fmt"
	"log"
	"paypal_checkout/internal/config"
	"paypal_checkout/internal/usecase/interfaces"
)

// NewGateway selects the gateway implementation from configuration.
func NewGateway(cfg *config.Config) (interfaces.IPaymentGateway, error) {
	if cfg.GatewayMock {
		return NewMockGateway(), nil
	}

	switch cfg.Gateway {
	case config.GatewayPayPal:
		g, err := NewPayPalGateway(cfg.PayPalClientID, cfg.PayPalClientSecret, cfg.PayPalAPIBaseURL(), cfg.GatewayTimeout)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.GatewayMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		log.Printf("[payment][gateway] unknown gateway %q", cfg.Gateway)
		return nil, fmt.Errorf("unknown payment gateway %q", cfg.Gateway)
	}
}
