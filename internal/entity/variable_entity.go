package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DataType classifies what kind of value a variable accepts.
type DataType string

const (
	DataTypeDecimal     DataType = "decimal"
	DataTypeInteger     DataType = "integer"
	DataTypeBoolean     DataType = "boolean"
	DataTypeText        DataType = "text"
	DataTypeDate        DataType = "date"
	DataTypeChoice      DataType = "choice"
	DataTypeOrdinal     DataType = "ordinal"
	DataTypeNominal     DataType = "nominal"
	DataTypeDichotomous DataType = "dichotomous"
)

// Category constants for Variable grouping
const (
	CategoryPhysical    = "physical"
	CategoryLocation    = "location"
	CategoryQuality     = "quality"
	CategoryLegal       = "legal"
	CategoryEconomic    = "economic"
	CategoryTemporal    = "temporal"
	CategoryProxy       = "proxy"
	CategoryDichotomous = "dichotomous"
	CategoryOther       = "other"
)

// IsChoiceLike reports whether the type carries an enumerated choice set.
func (t DataType) IsChoiceLike() bool {
	return t == DataTypeChoice || t == DataTypeOrdinal || t == DataTypeNominal
}

// IsQuantitative reports whether the type accepts numeric values with bounds.
func (t DataType) IsQuantitative() bool {
	return t == DataTypeDecimal || t == DataTypeInteger
}

// Valid reports whether t is one of the supported data types.
func (t DataType) Valid() bool {
	switch t {
	case DataTypeDecimal, DataTypeInteger, DataTypeBoolean, DataTypeText,
		DataTypeDate, DataTypeChoice, DataTypeOrdinal, DataTypeNominal,
		DataTypeDichotomous:
		return true
	}
	return false
}

// Choice is one enumerated option of a choice-like variable.
type Choice struct {
	Code  string
	Label string
}

// Variable is one entry of the valuation variable catalog: a typed feature
// that can be collected per property and fed into regression models.
//
// Choices is the canonical ordered representation: for ordinal variables the
// order is the configured one, otherwise ascending code order. It is resolved
// once at the input boundary by ResolveChoices.
type Variable struct {
	Id                 uuid.UUID
	Code               string // unique, immutable, e.g. "area_total"
	Name               string
	Description        string
	Category           string   // physical, location, quality, ...
	DataType           DataType
	Unit               string   // m², anos, R$ — quantitative types only
	MinValue           *float64
	MaxValue           *float64
	Choices            []Choice
	IsRequired         bool
	IsActive           bool
	DisplayOrder       int
	UseInRegression    bool
	ParentId           *uuid.UUID // categorical origin for dummy variables
	TransformationRule string     // descriptive only, e.g. "1 if padrao=Alto else 0"
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ResolveChoices builds the canonical ordered choice sequence from the raw
// code->label mapping and the optional explicit order. Every order entry must
// name a key of choices; a dangling entry is a validation failure. When no
// order is given, codes are sorted ascending so the result is deterministic.
func ResolveChoices(choices map[string]string, order []string) ([]Choice, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	if len(order) > 0 {
		resolved := make([]Choice, 0, len(choices))
		seen := make(map[string]bool, len(order))
		for _, code := range order {
			label, ok := choices[code]
			if !ok {
				return nil, &ValidationError{Field: "choice_order", Err: ErrDanglingChoiceOrder}
			}
			if seen[code] {
				continue
			}
			seen[code] = true
			resolved = append(resolved, Choice{Code: code, Label: label})
		}
		// Codes the order left out go last, in code order.
		rest := make([]string, 0, len(choices))
		for code := range choices {
			if !seen[code] {
				rest = append(rest, code)
			}
		}
		sort.Strings(rest)
		for _, code := range rest {
			resolved = append(resolved, Choice{Code: code, Label: choices[code]})
		}
		return resolved, nil
	}

	codes := make([]string, 0, len(choices))
	for code := range choices {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	resolved := make([]Choice, 0, len(codes))
	for _, code := range codes {
		resolved = append(resolved, Choice{Code: code, Label: choices[code]})
	}
	return resolved, nil
}

// Validate enforces per-record structural invariants. On success it also
// normalizes the record: non-choice-like variables never keep stale choice
// metadata. Cycle detection over parent links needs catalog access and lives
// in the catalog service, not here.
func (v *Variable) Validate() error {
	if v.DataType.IsChoiceLike() && len(v.Choices) == 0 {
		return &ValidationError{Field: "choices", Err: ErrMissingChoices}
	}

	if v.MinValue != nil && v.MaxValue != nil && *v.MinValue > *v.MaxValue {
		return &ValidationError{Field: "max_value", Err: ErrInvertedBounds}
	}

	if !v.DataType.IsChoiceLike() {
		v.Choices = nil
	}

	return nil
}

// ChoiceLabels returns the labels in canonical order.
func (v *Variable) ChoiceLabels() []string {
	if len(v.Choices) == 0 {
		return nil
	}
	labels := make([]string, 0, len(v.Choices))
	for _, c := range v.Choices {
		labels = append(labels, c.Label)
	}
	return labels
}

// ChoiceByCode looks up a choice by its code.
func (v *Variable) ChoiceByCode(code string) (Choice, bool) {
	for _, c := range v.Choices {
		if c.Code == code {
			return c, true
		}
	}
	return Choice{}, false
}
