package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role constants for Property
const (
	PropertyRoleSubject    = "subject"
	PropertyRoleComparable = "comparable"
)

// Property is a registered subject or comparable property. Values holds the
// observed variable values keyed by variable code; it is validated against
// the active catalog on every write.
type Property struct {
	Id         uuid.UUID
	Code       string // unique reference, e.g. "comp-0042"
	Role       string // subject or comparable
	Street     string
	Number     string
	District   string
	City       string
	State      string
	TotalPrice *float64
	Values     map[string]interface{} // variable code -> observed value (JSONB)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
