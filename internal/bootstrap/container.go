package bootstrap

import (
	"valuation-catalog-be/internal/config"
	"valuation-catalog-be/internal/controller"
	"valuation-catalog-be/internal/pkg/logger"
	"valuation-catalog-be/internal/repository/unitofwork"
	"valuation-catalog-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CatalogController  controller.ICatalogController
	PropertyController controller.IPropertyController

	// Background consumers (started by main)
	RulesService service.IRulesService

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	// 2. Repositories
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.CatalogEventsTopic)
	catalogService := service.NewCatalogService(uowFactory, publisherService, appLogger)
	rulesService := service.NewRulesService(uowFactory, pubSub, cfg.App.CatalogEventsTopic, appLogger)
	seederService := service.NewSeederService(catalogService, appLogger)
	propertyService := service.NewPropertyService(uowFactory, appLogger)

	// 4. Controllers
	catalogController := controller.NewCatalogController(catalogService, rulesService, seederService)
	propertyController := controller.NewPropertyController(propertyService)

	return &Container{
		CatalogController:  catalogController,
		PropertyController: propertyController,
		RulesService:       rulesService,
		Logger:             appLogger,
	}
}
