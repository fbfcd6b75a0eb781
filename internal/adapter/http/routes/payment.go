package routes

import (
	"paypal_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI      = "/api/paypal"
	PathPayments = "/payment"
	PathMetrics  = "/metrics"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payment := rg.Group(PathPayments)
	{
		payment.POST("/create", paymentHandler.CreatePayment)
		payment.POST("/success", paymentHandler.ConfirmPayment)
		payment.GET("/success", paymentHandler.SuccessRedirect)
		payment.GET("/cancel", paymentHandler.Cancel)
		payment.GET("/error", paymentHandler.Error)
		payment.GET("/records/:id", paymentHandler.GetRecord)
	}
}
