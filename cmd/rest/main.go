package main

import (
	"context"
	"log"

	"valuation-catalog-be/internal/bootstrap"
	"valuation-catalog-be/internal/config"
	"valuation-catalog-be/internal/server"
	"valuation-catalog-be/internal/tracer"
	"valuation-catalog-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start the rule-cache invalidation consumer
	if err := container.RulesService.ListenInvalidations(context.Background()); err != nil {
		log.Printf("Warning: rule cache invalidation consumer failed to start: %v", err)
	}

	// 5. Initialize and run the server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
