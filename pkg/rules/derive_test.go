package rules

import (
	"reflect"
	"testing"

	"valuation-catalog-be/internal/entity"
)

func bound(v float64) *float64 {
	return &v
}

func TestDeriveQuantitative(t *testing.T) {
	tests := []struct {
		name     string
		variable entity.Variable
		wantMin  *float64
		wantMax  *float64
	}{
		{
			name: "both bounds",
			variable: entity.Variable{
				Code: "area_total", DataType: entity.DataTypeDecimal,
				MinValue: bound(0), MaxValue: bound(10000),
			},
			wantMin: bound(0), wantMax: bound(10000),
		},
		{
			name: "only min",
			variable: entity.Variable{
				Code: "quartos", DataType: entity.DataTypeInteger,
				MinValue: bound(0),
			},
			wantMin: bound(0), wantMax: nil,
		},
		{
			name: "no bounds",
			variable: entity.Variable{
				Code: "idade_imovel", DataType: entity.DataTypeInteger,
			},
			wantMin: nil, wantMax: nil,
		},
		{
			name: "bounds ignored for text",
			variable: entity.Variable{
				Code: "observacoes", DataType: entity.DataTypeText,
				MinValue: bound(1), MaxValue: bound(2),
			},
			wantMin: nil, wantMax: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Derive(&tt.variable)

			if d.Type != string(tt.variable.DataType) {
				t.Errorf("Type = %q, want %q", d.Type, tt.variable.DataType)
			}
			if !reflect.DeepEqual(d.Min, tt.wantMin) {
				t.Errorf("Min = %v, want %v", d.Min, tt.wantMin)
			}
			if !reflect.DeepEqual(d.Max, tt.wantMax) {
				t.Errorf("Max = %v, want %v", d.Max, tt.wantMax)
			}
			if d.Choices != nil {
				t.Errorf("Choices = %v, want nil", d.Choices)
			}
		})
	}
}

func TestDeriveRequired(t *testing.T) {
	v := entity.Variable{Code: "area_total", DataType: entity.DataTypeDecimal, IsRequired: true}
	if d := Derive(&v); !d.Required {
		t.Error("Required = false, want true")
	}

	v.IsRequired = false
	if d := Derive(&v); d.Required {
		t.Error("Required = true, want false")
	}
}

func TestDerivePreservesChoiceOrder(t *testing.T) {
	// configured order c, a, b must come out as High, Low, Medium
	choices, err := entity.ResolveChoices(
		map[string]string{"a": "Low", "b": "Medium", "c": "High"},
		[]string{"c", "a", "b"},
	)
	if err != nil {
		t.Fatalf("ResolveChoices: %v", err)
	}

	v := entity.Variable{Code: "padrao", DataType: entity.DataTypeChoice, Choices: choices}
	d := Derive(&v)

	wantLabels := []string{"High", "Low", "Medium"}
	if got := d.ChoiceLabels(); !reflect.DeepEqual(got, wantLabels) {
		t.Errorf("ChoiceLabels() = %v, want %v", got, wantLabels)
	}
}

func TestDeriveCodeSortedChoices(t *testing.T) {
	choices, err := entity.ResolveChoices(
		map[string]string{"frente": "Frente", "fundos": "Fundos", "lateral": "Lateral"},
		nil,
	)
	if err != nil {
		t.Fatalf("ResolveChoices: %v", err)
	}

	v := entity.Variable{Code: "frente", DataType: entity.DataTypeNominal, Choices: choices}
	d := Derive(&v)

	wantCodes := []string{"frente", "fundos", "lateral"}
	for i, c := range d.Choices {
		if c.Code != wantCodes[i] {
			t.Errorf("Choices[%d].Code = %q, want %q", i, c.Code, wantCodes[i])
		}
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	choices, _ := entity.ResolveChoices(
		map[string]string{"ruim": "Ruim", "bom": "Bom", "novo": "Novo"},
		[]string{"ruim", "bom", "novo"},
	)
	v := entity.Variable{
		Code:     "estado_conservacao",
		DataType: entity.DataTypeOrdinal,
		Choices:  choices,
	}

	first := Derive(&v)
	second := Derive(&v)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Derive is not deterministic: %+v != %+v", first, second)
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	v := entity.Variable{
		Code:     "vista",
		DataType: entity.DataTypeChoice,
		Choices:  []entity.Choice{{Code: "a", Label: "A"}},
	}

	d := Derive(&v)
	d.Choices[0].Label = "changed"

	if v.Choices[0].Label != "A" {
		t.Error("Derive leaked a reference to the variable's choices")
	}
}
