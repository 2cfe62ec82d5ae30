// Package rules turns catalog variables into validation-rule descriptors
// consumable by form builders and data importers. Everything here is a pure
// transform of in-memory records: no database, no network.
package rules

import (
	"valuation-catalog-be/internal/entity"
)

// Choice is one allowed option, in presentation order.
type Choice struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Descriptor is the canonical validation rule set for one variable.
// Min/Max are present only for quantitative types with a configured bound;
// Choices only for choice-like types. Choice order is deterministic: the
// variable's configured order, else ascending code order.
type Descriptor struct {
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Choices  []Choice `json:"choices,omitempty"`
}

// ChoiceLabels returns just the labels, preserving descriptor order.
func (d Descriptor) ChoiceLabels() []string {
	if len(d.Choices) == 0 {
		return nil
	}
	labels := make([]string, 0, len(d.Choices))
	for _, c := range d.Choices {
		labels = append(labels, c.Label)
	}
	return labels
}

// HasChoice reports whether code is an allowed option.
func (d Descriptor) HasChoice(code string) bool {
	for _, c := range d.Choices {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Derive builds the rule descriptor for a variable. It is total over every
// record that passed catalog validation and never mutates its input.
func Derive(v *entity.Variable) Descriptor {
	d := Descriptor{
		Type:     string(v.DataType),
		Required: v.IsRequired,
	}

	if v.DataType.IsQuantitative() {
		if v.MinValue != nil {
			mn := *v.MinValue
			d.Min = &mn
		}
		if v.MaxValue != nil {
			mx := *v.MaxValue
			d.Max = &mx
		}
	}

	if v.DataType.IsChoiceLike() && len(v.Choices) > 0 {
		d.Choices = make([]Choice, 0, len(v.Choices))
		for _, c := range v.Choices {
			d.Choices = append(d.Choices, Choice{Code: c.Code, Label: c.Label})
		}
	}

	return d
}
