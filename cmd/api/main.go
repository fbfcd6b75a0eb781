package main

import (
	_ "paypal_checkout/docs"
	"paypal_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PayPal Checkout API
// @version         1.0
// @description     Checkout facade: create a payment, send the payer to approve it, execute and record it.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8081

// @BasePath  /api/paypal

func main() {
	routes.Run()
}
