package entity

import (
	"errors"
	"testing"
)

func bound(v float64) *float64 {
	return &v
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		min     *float64
		max     *float64
		wantErr error
	}{
		{name: "no bounds", min: nil, max: nil, wantErr: nil},
		{name: "only min", min: bound(10), max: nil, wantErr: nil},
		{name: "only max", min: nil, max: bound(100), wantErr: nil},
		{name: "valid range", min: bound(0), max: bound(10000), wantErr: nil},
		{name: "equal bounds", min: bound(5), max: bound(5), wantErr: nil},
		{name: "inverted bounds", min: bound(10), max: bound(5), wantErr: ErrInvertedBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Variable{
				Code:     "area_total",
				DataType: DataTypeDecimal,
				MinValue: tt.min,
				MaxValue: tt.max,
			}
			err := v.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error is not a ValidationError: %v", err)
			}
			if ve.Field != "max_value" {
				t.Errorf("Field = %q, want %q", ve.Field, "max_value")
			}
		})
	}
}

func TestValidateMissingChoices(t *testing.T) {
	for _, dataType := range []DataType{DataTypeChoice, DataTypeOrdinal, DataTypeNominal} {
		t.Run(string(dataType), func(t *testing.T) {
			v := Variable{Code: "padrao", DataType: dataType}
			err := v.Validate()
			if !errors.Is(err, ErrMissingChoices) {
				t.Fatalf("Validate() = %v, want ErrMissingChoices", err)
			}

			v.Choices = []Choice{{Code: "a", Label: "A"}}
			if err := v.Validate(); err != nil {
				t.Fatalf("Validate() with choices = %v, want nil", err)
			}
		})
	}
}

func TestValidateClearsStaleChoices(t *testing.T) {
	v := Variable{
		Code:     "quartos",
		DataType: DataTypeInteger,
		Choices:  []Choice{{Code: "a", Label: "A"}},
	}

	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if v.Choices != nil {
		t.Errorf("Choices = %v, want nil after normalization", v.Choices)
	}

	// normalization is idempotent
	if err := v.Validate(); err != nil {
		t.Fatalf("second Validate() = %v, want nil", err)
	}
	if v.Choices != nil {
		t.Errorf("Choices = %v, want nil after second validation", v.Choices)
	}
}

func TestResolveChoicesExplicitOrder(t *testing.T) {
	choices := map[string]string{"a": "Low", "b": "Medium", "c": "High"}

	resolved, err := ResolveChoices(choices, []string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("ResolveChoices() = %v, want nil", err)
	}

	wantCodes := []string{"c", "a", "b"}
	wantLabels := []string{"High", "Low", "Medium"}
	if len(resolved) != len(wantCodes) {
		t.Fatalf("len = %d, want %d", len(resolved), len(wantCodes))
	}
	for i := range resolved {
		if resolved[i].Code != wantCodes[i] || resolved[i].Label != wantLabels[i] {
			t.Errorf("resolved[%d] = %+v, want {%s %s}", i, resolved[i], wantCodes[i], wantLabels[i])
		}
	}
}

func TestResolveChoicesCodeSortFallback(t *testing.T) {
	choices := map[string]string{"zulu": "Z", "alfa": "A", "mike": "M"}

	resolved, err := ResolveChoices(choices, nil)
	if err != nil {
		t.Fatalf("ResolveChoices() = %v, want nil", err)
	}

	wantCodes := []string{"alfa", "mike", "zulu"}
	for i, code := range wantCodes {
		if resolved[i].Code != code {
			t.Errorf("resolved[%d].Code = %q, want %q", i, resolved[i].Code, code)
		}
	}
}

func TestResolveChoicesPartialOrderAppendsRest(t *testing.T) {
	choices := map[string]string{"a": "A", "b": "B", "c": "C"}

	resolved, err := ResolveChoices(choices, []string{"c"})
	if err != nil {
		t.Fatalf("ResolveChoices() = %v, want nil", err)
	}

	wantCodes := []string{"c", "a", "b"}
	for i, code := range wantCodes {
		if resolved[i].Code != code {
			t.Errorf("resolved[%d].Code = %q, want %q", i, resolved[i].Code, code)
		}
	}
}

func TestResolveChoicesDanglingOrder(t *testing.T) {
	choices := map[string]string{"a": "A"}

	_, err := ResolveChoices(choices, []string{"a", "ghost"})
	if !errors.Is(err, ErrDanglingChoiceOrder) {
		t.Fatalf("ResolveChoices() = %v, want ErrDanglingChoiceOrder", err)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "choice_order" {
		t.Errorf("error = %v, want ValidationError on choice_order", err)
	}
}

func TestDataTypeClassification(t *testing.T) {
	choiceLike := []DataType{DataTypeChoice, DataTypeOrdinal, DataTypeNominal}
	for _, dt := range choiceLike {
		if !dt.IsChoiceLike() {
			t.Errorf("%s.IsChoiceLike() = false, want true", dt)
		}
	}

	quantitative := []DataType{DataTypeDecimal, DataTypeInteger}
	for _, dt := range quantitative {
		if !dt.IsQuantitative() {
			t.Errorf("%s.IsQuantitative() = false, want true", dt)
		}
	}

	if DataTypeBoolean.IsChoiceLike() || DataTypeBoolean.IsQuantitative() {
		t.Error("boolean must be neither choice-like nor quantitative")
	}
	if DataType("made_up").Valid() {
		t.Error(`Valid("made_up") = true, want false`)
	}
}
