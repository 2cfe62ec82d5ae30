package memory

import (
	"context"
	"testing"

	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/repository/specification"
)

func TestFindAllCatalogOrderCollatesAccentedNames(t *testing.T) {
	repo := NewVariableRepository()
	ctx := context.Background()

	seed := []*entity.Variable{
		{Code: "piscina", Name: "Piscina", Category: entity.CategoryPhysical, DataType: entity.DataTypeBoolean, DisplayOrder: 10, IsActive: true},
		{Code: "area_total", Name: "Área Total", Category: entity.CategoryPhysical, DataType: entity.DataTypeDecimal, DisplayOrder: 10, IsActive: true},
		{Code: "area_util", Name: "Área Útil", Category: entity.CategoryPhysical, DataType: entity.DataTypeDecimal, DisplayOrder: 10, IsActive: true},
		{Code: "elevador", Name: "Elevador", Category: entity.CategoryPhysical, DataType: entity.DataTypeBoolean, DisplayOrder: 10, IsActive: true},
	}
	for _, v := range seed {
		if err := repo.Create(ctx, v); err != nil {
			t.Fatalf("Create(%s): %v", v.Code, err)
		}
	}

	got, err := repo.FindAll(ctx, specification.CatalogOrder{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	// pt-BR collation: Á sorts with A, before E and P
	want := []string{"area_total", "area_util", "elevador", "piscina"}
	if len(got) != len(want) {
		t.Fatalf("got %d variables, want %d", len(got), len(want))
	}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("position %d: got %s, want %s", i, got[i].Code, code)
		}
	}
}

func TestFindAllCatalogOrderPrecedence(t *testing.T) {
	repo := NewVariableRepository()
	ctx := context.Background()

	seed := []*entity.Variable{
		{Code: "vista", Name: "Vista", Category: entity.CategoryLocation, DataType: entity.DataTypeText, DisplayOrder: 1, IsActive: true},
		{Code: "quartos", Name: "Quartos", Category: entity.CategoryPhysical, DataType: entity.DataTypeInteger, DisplayOrder: 20, IsActive: true},
		{Code: "area_total", Name: "Área Total", Category: entity.CategoryPhysical, DataType: entity.DataTypeDecimal, DisplayOrder: 10, IsActive: true},
	}
	for _, v := range seed {
		if err := repo.Create(ctx, v); err != nil {
			t.Fatalf("Create(%s): %v", v.Code, err)
		}
	}

	got, err := repo.FindAll(ctx, specification.CatalogOrder{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	// category first ("location" < "physical"), then display order
	want := []string{"vista", "area_total", "quartos"}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("position %d: got %s, want %s", i, got[i].Code, code)
		}
	}
}
