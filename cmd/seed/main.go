// Seeds the variable catalog with the NBR 14653 reference set. Idempotent:
// re-running updates the managed definitions in place and never removes
// variables absent from the reference list.
package main

import (
	"context"
	"log"
	"os"

	"valuation-catalog-be/internal/pkg/logger"
	"valuation-catalog-be/internal/repository/unitofwork"
	"valuation-catalog-be/internal/service"
	"valuation-catalog-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Variable Catalog...")

	appLogger := logger.NewZapLogger(os.Getenv("LOG_FILE_PATH"), false)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	catalogService := service.NewCatalogService(uowFactory, nil, appLogger)
	seederService := service.NewSeederService(catalogService, appLogger)

	definitions := service.ReferenceCatalog()
	report, err := seederService.Seed(context.Background(), definitions)
	if err != nil {
		log.Fatal("Error: Seeding failed:", err)
	}

	color.Green("✓ Created: %d", report.Created)
	color.Yellow("→ Updated: %d", report.Updated)
	log.Printf("Catalog seeding completed: %d definitions processed", len(definitions))
}
