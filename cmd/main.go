// Package main is the entry point for the checkout-service application.
//
// @title           Checkout Service API
// @version         1.0.0
// @description     Backend for storefront checkout: shipping rate quotes, Paysera payments and Venipak shipments for the Baltics.
//
// @contact.name   API Support
// @contact.url    https://github.com/ScriptVenture/checkout-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the order backend endpoints. Required if authentication is enabled.
//
// @tag.name        Rates
// @tag.description Shipping rate quoting
//
// @tag.name        Payments
// @tag.description Payment gateway integration
//
// @tag.name        Shipments
// @tag.description Carrier shipment registration and tracking
//
// @tag.name        PickupPoints
// @tag.description Carrier pickup point listing
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/ScriptVenture/checkout-service/docs" // swagger docs

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/app"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
