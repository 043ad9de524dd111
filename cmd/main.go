// Package main is the entry point for the planning-service application.
//
// @title           Planning Service API
// @version         1.0.0
// @description     Production planning for roll-fed machines.
//
//	A plan line ties a product, its material roll and a machine to an order,
//	and keeps amount, meters, blows and minutes consistent with one another.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/planning-service
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
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Operator token as "Bearer <jwt>". Identifies who saves or edits plans.
//
// @tag.name        Plans
// @tag.description Plan line calculation and persistence
//
// @tag.name        Catalog
// @tag.description Products, materials, rolls, machines and clients
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/planning-service/docs" // swagger docs

	"github.com/guttosm/planning-service/config"
	"github.com/guttosm/planning-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.InitializeApp(cfg)
	defer a.Close()

	server := app.NewServer(a.Router, cfg.Server.Port,
		app.WithRequestTimeout(cfg.Server.RequestTimeout),
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server error")
	}
}
