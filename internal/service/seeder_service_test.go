package service

import (
	"context"
	"testing"

	"valuation-catalog-be/internal/dto"
	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/pkg/logger"
	"valuation-catalog-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeeder() (ISeederService, ICatalogService) {
	catalog := NewCatalogService(memory.NewRepositoryFactory(), nil, logger.NewNopLogger())
	return NewSeederService(catalog, logger.NewNopLogger()), catalog
}

func TestSeedReferenceCatalogIsIdempotent(t *testing.T) {
	seeder, catalog := newTestSeeder()
	ctx := context.Background()

	first, err := seeder.SeedReferenceCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, first.Created)
	assert.Equal(t, 0, first.Updated)

	second, err := seeder.SeedReferenceCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 24, second.Updated)

	all, err := catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 24)
}

func TestSeedReportAccountsForEveryDefinition(t *testing.T) {
	seeder, _ := newTestSeeder()

	defs := ReferenceCatalog()
	report, err := seeder.Seed(context.Background(), defs)
	require.NoError(t, err)
	assert.Equal(t, len(defs), report.Created+report.Updated)
}

func TestSeedLastWriteWinsOnDuplicateCode(t *testing.T) {
	seeder, catalog := newTestSeeder()
	ctx := context.Background()

	defs := []dto.VariableDefinition{
		{Code: "area_total", Name: "First", DataType: string(entity.DataTypeDecimal), MaxValue: bound(100)},
		{Code: "area_total", Name: "Second", DataType: string(entity.DataTypeDecimal), MaxValue: bound(9999)},
	}
	report, err := seeder.Seed(ctx, defs)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)

	got, err := catalog.Get(ctx, "area_total")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Name)
	assert.Equal(t, 9999.0, *got.MaxValue)
}

func TestSeedDoesNotRemoveExistingVariables(t *testing.T) {
	seeder, catalog := newTestSeeder()
	ctx := context.Background()

	_, err := catalog.Create(ctx, &dto.VariableDefinition{
		Code:     "custom_local",
		Name:     "Variável do usuário",
		DataType: string(entity.DataTypeText),
	})
	require.NoError(t, err)

	_, err = seeder.SeedReferenceCatalog(ctx)
	require.NoError(t, err)

	got, err := catalog.Get(ctx, "custom_local")
	require.NoError(t, err)
	assert.Equal(t, "Variável do usuário", got.Name)

	all, err := catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 25)
}

func TestSeedRejectsInvalidDefinition(t *testing.T) {
	seeder, catalog := newTestSeeder()
	ctx := context.Background()

	defs := []dto.VariableDefinition{
		{Code: "ok", Name: "Ok", DataType: string(entity.DataTypeDecimal)},
		{Code: "bad", Name: "Bad", DataType: string(entity.DataTypeOrdinal)}, // no choices
	}
	_, err := seeder.Seed(ctx, defs)
	assert.ErrorIs(t, err, entity.ErrMissingChoices)

	// definitions before the failing one are kept
	_, err = catalog.Get(ctx, "ok")
	assert.NoError(t, err)
}
