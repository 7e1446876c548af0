// Package app provides application initialization and dependency wiring.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Logger first, everything else logs through it.
	InitializeLogger()

	dbComponents := InitializeDatabase(cfg.Database)
	carrierComponents := InitializeCarrier(cfg.Venipak)
	serviceComponents := InitializeServices(cfg, carrierComponents, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, carrierComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handlers, routerComponents.Config)
}
