// DTOs for property records
package dto

import (
	"time"

	"github.com/google/uuid"
)

// PropertyRequest is the write shape for a subject or comparable property.
// Values maps variable code -> observed value and is validated against the
// active catalog.
type PropertyRequest struct {
	Code       string                 `json:"code" validate:"required,max=50"`
	Role       string                 `json:"role" validate:"required,oneof=subject comparable"`
	Street     string                 `json:"street,omitempty"`
	Number     string                 `json:"number,omitempty"`
	District   string                 `json:"district,omitempty"`
	City       string                 `json:"city,omitempty"`
	State      string                 `json:"state,omitempty" validate:"omitempty,len=2"`
	TotalPrice *float64               `json:"total_price,omitempty"`
	Values     map[string]interface{} `json:"values,omitempty"`
}

// PropertyResponse is the read shape of a property record.
type PropertyResponse struct {
	Id         uuid.UUID              `json:"id"`
	Code       string                 `json:"code"`
	Role       string                 `json:"role"`
	Street     string                 `json:"street,omitempty"`
	Number     string                 `json:"number,omitempty"`
	District   string                 `json:"district,omitempty"`
	City       string                 `json:"city,omitempty"`
	State      string                 `json:"state,omitempty"`
	TotalPrice *float64               `json:"total_price,omitempty"`
	Values     map[string]interface{} `json:"values,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}
