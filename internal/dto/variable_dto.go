// DTOs for the variable catalog
package dto

import (
	"time"

	"github.com/google/uuid"
)

// VariableDefinition is the write shape for a catalog variable, used by the
// create/update endpoints and by the seeder. Choices comes in as a
// code->label mapping plus an optional explicit order (for ordinal sets);
// the service resolves them into the canonical ordered sequence.
type VariableDefinition struct {
	Code               string            `json:"code" validate:"required,max=50"`
	Name               string            `json:"name" validate:"required,max=200"`
	Description        string            `json:"description,omitempty"`
	Category           string            `json:"category,omitempty"` // physical, location, quality, ...
	DataType           string            `json:"data_type" validate:"required"`
	Unit               string            `json:"unit,omitempty"`
	MinValue           *float64          `json:"min_value,omitempty"`
	MaxValue           *float64          `json:"max_value,omitempty"`
	Choices            map[string]string `json:"choices,omitempty"`
	ChoiceOrder        []string          `json:"choice_order,omitempty"`
	IsRequired         bool              `json:"is_required"`
	IsActive           *bool             `json:"is_active,omitempty"`         // defaults to true
	DisplayOrder       int               `json:"display_order"`
	UseInRegression    *bool             `json:"use_in_regression,omitempty"` // defaults to true
	ParentCode         string            `json:"parent_code,omitempty"`
	TransformationRule string            `json:"transformation_rule,omitempty"`
}

// ChoiceDTO is one allowed option in presentation order.
type ChoiceDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// VariableResponse is the read shape of a catalog variable.
type VariableResponse struct {
	Id                 uuid.UUID   `json:"id"`
	Code               string      `json:"code"`
	Name               string      `json:"name"`
	Description        string      `json:"description,omitempty"`
	Category           string      `json:"category"`
	DataType           string      `json:"data_type"`
	Unit               string      `json:"unit,omitempty"`
	MinValue           *float64    `json:"min_value,omitempty"`
	MaxValue           *float64    `json:"max_value,omitempty"`
	Choices            []ChoiceDTO `json:"choices,omitempty"`
	IsRequired         bool        `json:"is_required"`
	IsActive           bool        `json:"is_active"`
	DisplayOrder       int         `json:"display_order"`
	UseInRegression    bool        `json:"use_in_regression"`
	ParentId           *uuid.UUID  `json:"parent_id,omitempty"`
	TransformationRule string      `json:"transformation_rule,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// SeedReport summarizes one seeder run.
type SeedReport struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}
