// GORM model for the properties table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Property persists one subject or comparable property. Values is a JSONB
// map of variable code -> observed value.
type Property struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code       string            `gorm:"type:varchar(50);uniqueIndex;not null"`
	Role       string            `gorm:"type:varchar(20);not null;default:'comparable';index"`
	Street     string            `gorm:"type:varchar(200)"`
	Number     string            `gorm:"type:varchar(20)"`
	District   string            `gorm:"type:varchar(100)"`
	City       string            `gorm:"type:varchar(100)"`
	State      string            `gorm:"type:varchar(2)"`
	TotalPrice *float64          `gorm:"type:numeric(15,2)"`
	Values     datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime"`
}

func (Property) TableName() string {
	return "properties"
}
