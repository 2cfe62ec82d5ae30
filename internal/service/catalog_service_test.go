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

func newTestCatalogService() ICatalogService {
	return NewCatalogService(memory.NewRepositoryFactory(), nil, logger.NewNopLogger())
}

func decimalDef(code string, min, max *float64) *dto.VariableDefinition {
	return &dto.VariableDefinition{
		Code:     code,
		Name:     "Test " + code,
		DataType: string(entity.DataTypeDecimal),
		MinValue: min,
		MaxValue: max,
	}
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	created, wasCreated, err := svc.Upsert(ctx, decimalDef("area_total", bound(0), bound(10000)))
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, "area_total", created.Code)

	// second upsert with the same code fully replaces the record
	def := decimalDef("area_total", bound(10), bound(500))
	def.Name = "Área Total"
	updated, wasCreated, err := svc.Upsert(ctx, def)
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "Área Total", updated.Name)
	assert.Equal(t, 10.0, *updated.MinValue)
	assert.Equal(t, 500.0, *updated.MaxValue)
}

func TestUpsertFullReplaceClearsOmittedFields(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	def := decimalDef("quartos", bound(0), bound(20))
	def.Unit = "unidades"
	def.Description = "Quantidade de quartos"
	_, _, err := svc.Upsert(ctx, def)
	require.NoError(t, err)

	// upsert without unit/description/bounds: all non-code fields replaced
	_, _, err = svc.Upsert(ctx, decimalDef("quartos", nil, nil))
	require.NoError(t, err)

	got, err := svc.Get(ctx, "quartos")
	require.NoError(t, err)
	assert.Empty(t, got.Unit)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.MinValue)
	assert.Nil(t, got.MaxValue)
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	_, err := svc.Create(ctx, decimalDef("area_total", nil, nil))
	require.NoError(t, err)

	_, err = svc.Create(ctx, decimalDef("area_total", nil, nil))
	assert.ErrorIs(t, err, entity.ErrDuplicateCode)
}

func TestCreateRejectsInvertedBounds(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.Create(context.Background(), decimalDef("area_total", bound(10), bound(5)))
	assert.ErrorIs(t, err, entity.ErrInvertedBounds)

	// nothing committed
	_, getErr := svc.Get(context.Background(), "area_total")
	assert.ErrorIs(t, getErr, entity.ErrNotFound)
}

func TestCreateRejectsMissingChoices(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.Create(context.Background(), &dto.VariableDefinition{
		Code:     "padrao",
		Name:     "Padrão",
		DataType: string(entity.DataTypeChoice),
	})
	assert.ErrorIs(t, err, entity.ErrMissingChoices)
}

func TestCreateRejectsDanglingChoiceOrder(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.Create(context.Background(), &dto.VariableDefinition{
		Code:        "padrao",
		Name:        "Padrão",
		DataType:    string(entity.DataTypeOrdinal),
		Choices:     map[string]string{"baixo": "Baixo"},
		ChoiceOrder: []string{"baixo", "ghost"},
	})
	assert.ErrorIs(t, err, entity.ErrDanglingChoiceOrder)
}

func TestCreateRejectsUnknownDataType(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.Create(context.Background(), &dto.VariableDefinition{
		Code:     "x",
		Name:     "X",
		DataType: "matrix",
	})
	assert.ErrorIs(t, err, entity.ErrUnknownDataType)
}

func TestCreateNormalizesStaleChoices(t *testing.T) {
	svc := newTestCatalogService()

	def := decimalDef("area_total", nil, nil)
	def.Choices = map[string]string{"a": "A"}
	created, err := svc.Create(context.Background(), def)
	require.NoError(t, err)
	assert.Empty(t, created.Choices, "quantitative variable must not keep choice metadata")
}

func TestUpdateRequiresExistingCode(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.Update(context.Background(), "ghost", decimalDef("ghost", nil, nil))
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestParentCycleRejected(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	_, err := svc.Create(ctx, decimalDef("b", nil, nil))
	require.NoError(t, err)

	defA := decimalDef("a", nil, nil)
	defA.ParentCode = "b"
	_, err = svc.Create(ctx, defA)
	require.NoError(t, err)

	// closing the loop b -> a must fail
	defB := decimalDef("b", nil, nil)
	defB.ParentCode = "a"
	_, err = svc.Update(ctx, "b", defB)
	assert.ErrorIs(t, err, entity.ErrCyclicParent)
}

func TestSelfParentRejected(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	_, err := svc.Create(ctx, decimalDef("a", nil, nil))
	require.NoError(t, err)

	def := decimalDef("a", nil, nil)
	def.ParentCode = "a"
	_, err = svc.Update(ctx, "a", def)
	assert.ErrorIs(t, err, entity.ErrCyclicParent)
}

func TestUnknownParentRejected(t *testing.T) {
	svc := newTestCatalogService()

	def := decimalDef("a", nil, nil)
	def.ParentCode = "ghost"
	_, err := svc.Create(context.Background(), def)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteCascadesToDerivedVariables(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.VariableDefinition{
		Code:     "padrao_construcao",
		Name:     "Padrão de Construção",
		DataType: string(entity.DataTypeOrdinal),
		Choices:  map[string]string{"baixo": "Baixo", "alto": "Alto"},
	})
	require.NoError(t, err)

	child := &dto.VariableDefinition{
		Code:       "dic_padrao_alto",
		Name:       "Dummy: Padrão Alto",
		DataType:   string(entity.DataTypeDichotomous),
		ParentCode: "padrao_construcao",
	}
	_, err = svc.Create(ctx, child)
	require.NoError(t, err)

	grandchild := &dto.VariableDefinition{
		Code:       "dic_padrao_alto_log",
		Name:       "Dummy transformada",
		DataType:   string(entity.DataTypeDichotomous),
		ParentCode: "dic_padrao_alto",
	}
	_, err = svc.Create(ctx, grandchild)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "padrao_construcao"))

	for _, code := range []string{"padrao_construcao", "dic_padrao_alto", "dic_padrao_alto_log"} {
		_, err := svc.Get(ctx, code)
		assert.ErrorIs(t, err, entity.ErrNotFound, "variable %s should have been cascade deleted", code)
	}
}

func TestListActiveOrdering(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	inactive := false
	defs := []*dto.VariableDefinition{
		{Code: "vista", Name: "Vista", Category: entity.CategoryLocation, DataType: string(entity.DataTypeText), DisplayOrder: 61},
		{Code: "area_total", Name: "Área Total", Category: entity.CategoryPhysical, DataType: string(entity.DataTypeDecimal), DisplayOrder: 10},
		{Code: "piscina", Name: "Piscina", Category: entity.CategoryPhysical, DataType: string(entity.DataTypeBoolean), DisplayOrder: 10},
		{Code: "antiga", Name: "Antiga", Category: entity.CategoryPhysical, DataType: string(entity.DataTypeText), DisplayOrder: 5, IsActive: &inactive},
	}
	for _, def := range defs {
		_, err := svc.Create(ctx, def)
		require.NoError(t, err)
	}

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)

	var codes []string
	for _, v := range active {
		codes = append(codes, v.Code)
	}
	// category asc, then display order, then name breaks the tie
	assert.Equal(t, []string{"vista", "area_total", "piscina"}, codes)
}
