// Seeder service: idempotent bulk loader for the variable catalog.
package service

import (
	"context"

	"valuation-catalog-be/internal/dto"
	"valuation-catalog-be/internal/pkg/logger"
)

type ISeederService interface {
	Seed(ctx context.Context, definitions []dto.VariableDefinition) (*dto.SeedReport, error)
	SeedReferenceCatalog(ctx context.Context) (*dto.SeedReport, error)
}

type seederService struct {
	catalogService ICatalogService
	logger         logger.ILogger
}

func NewSeederService(catalogService ICatalogService, log logger.ILogger) ISeederService {
	return &seederService{
		catalogService: catalogService,
		logger:         log,
	}
}

// Seed applies every definition via upsert, strictly in input order, so a
// later duplicate code within one list overwrites the earlier entry.
// Variables absent from the list are left untouched: seeding is additive,
// never destructive. Created + Updated always equals len(definitions).
func (s *seederService) Seed(ctx context.Context, definitions []dto.VariableDefinition) (*dto.SeedReport, error) {
	report := &dto.SeedReport{}

	for i := range definitions {
		def := definitions[i]
		_, created, err := s.catalogService.Upsert(ctx, &def)
		if err != nil {
			return nil, err
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	s.logger.Info("seeder", "catalog seed completed", map[string]interface{}{
		"definitions": len(definitions),
		"created":     report.Created,
		"updated":     report.Updated,
	})
	return report, nil
}

// SeedReferenceCatalog loads the fixed reference catalog, resetting the
// managed definitions to their known state.
func (s *seederService) SeedReferenceCatalog(ctx context.Context) (*dto.SeedReport, error) {
	return s.Seed(ctx, ReferenceCatalog())
}
