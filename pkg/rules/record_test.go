package rules

import (
	"testing"

	"valuation-catalog-be/internal/entity"
)

func catalogForRecordTests() []*entity.Variable {
	padraoChoices, _ := entity.ResolveChoices(
		map[string]string{"baixo": "Baixo", "normal": "Normal", "alto": "Alto"},
		[]string{"baixo", "normal", "alto"},
	)
	return []*entity.Variable{
		{
			Code: "area_total", DataType: entity.DataTypeDecimal,
			MinValue: bound(0), MaxValue: bound(10000),
			IsRequired: true, IsActive: true,
		},
		{
			Code: "quartos", DataType: entity.DataTypeInteger,
			MinValue: bound(0), MaxValue: bound(20),
			IsActive: true,
		},
		{
			Code: "padrao_construcao", DataType: entity.DataTypeOrdinal,
			Choices: padraoChoices, IsActive: true,
		},
		{
			Code: "elevador", DataType: entity.DataTypeBoolean, IsActive: true,
		},
		{
			Code: "data_venda", DataType: entity.DataTypeDate, IsActive: true,
		},
		{
			Code: "dic_padrao_alto", DataType: entity.DataTypeDichotomous, IsActive: true,
		},
		{
			Code: "descontinuada", DataType: entity.DataTypeText, IsActive: false,
		},
	}
}

func errorFor(errs []FieldError, code string) (FieldError, bool) {
	for _, e := range errs {
		if e.Code == code {
			return e, true
		}
	}
	return FieldError{}, false
}

func TestValidateRecordAccepts(t *testing.T) {
	catalog := catalogForRecordTests()
	values := map[string]interface{}{
		"area_total":        120.5,
		"quartos":           3,
		"padrao_construcao": "alto",
		"elevador":          true,
		"data_venda":        "2026-03-15",
		"dic_padrao_alto":   1,
	}

	if errs := ValidateRecord(catalog, values); errs != nil {
		t.Fatalf("ValidateRecord() = %v, want nil", errs)
	}
}

func TestValidateRecordRejects(t *testing.T) {
	catalog := catalogForRecordTests()

	tests := []struct {
		name     string
		values   map[string]interface{}
		wantCode string
	}{
		{
			name:     "missing required",
			values:   map[string]interface{}{"quartos": 2},
			wantCode: "area_total",
		},
		{
			name:     "above maximum",
			values:   map[string]interface{}{"area_total": 99999.0},
			wantCode: "area_total",
		},
		{
			name:     "below minimum",
			values:   map[string]interface{}{"area_total": -1.0},
			wantCode: "area_total",
		},
		{
			name:     "non-integer for integer type",
			values:   map[string]interface{}{"area_total": 100.0, "quartos": 2.5},
			wantCode: "quartos",
		},
		{
			name:     "unknown choice code",
			values:   map[string]interface{}{"area_total": 100.0, "padrao_construcao": "luxo"},
			wantCode: "padrao_construcao",
		},
		{
			name:     "non-boolean",
			values:   map[string]interface{}{"area_total": 100.0, "elevador": "sim"},
			wantCode: "elevador",
		},
		{
			name:     "bad date format",
			values:   map[string]interface{}{"area_total": 100.0, "data_venda": "15/03/2026"},
			wantCode: "data_venda",
		},
		{
			name:     "dichotomous outside 0/1",
			values:   map[string]interface{}{"area_total": 100.0, "dic_padrao_alto": 2},
			wantCode: "dic_padrao_alto",
		},
		{
			name:     "unknown variable",
			values:   map[string]interface{}{"area_total": 100.0, "ghost": 1},
			wantCode: "ghost",
		},
		{
			name:     "value for inactive variable",
			values:   map[string]interface{}{"area_total": 100.0, "descontinuada": "x"},
			wantCode: "descontinuada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRecord(catalog, tt.values)
			if len(errs) == 0 {
				t.Fatal("ValidateRecord() = nil, want errors")
			}
			if _, found := errorFor(errs, tt.wantCode); !found {
				t.Errorf("no error for %q in %v", tt.wantCode, errs)
			}
		})
	}
}

func TestValidateRecordBoundsInclusive(t *testing.T) {
	catalog := catalogForRecordTests()

	for _, v := range []float64{0, 10000} {
		values := map[string]interface{}{"area_total": v}
		if errs := ValidateRecord(catalog, values); errs != nil {
			t.Errorf("ValidateRecord(area_total=%v) = %v, want nil", v, errs)
		}
	}
}
