// GORM model for the variables table (valuation variable catalog)
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Variable persists one catalog entry. Choices is a JSONB array of
// {"code","label"} objects already in canonical order; the column layout is
// an implementation detail of this store, not part of the service contract.
type Variable struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code               string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name               string         `gorm:"type:varchar(200);not null"`
	Description        string         `gorm:"type:text"`
	Category           string         `gorm:"type:varchar(20);default:'physical';index:idx_variables_category_active"`
	DataType           string         `gorm:"type:varchar(25);not null"`
	Unit               string         `gorm:"type:varchar(20)"`
	MinValue           *float64       `gorm:"type:numeric(15,4)"`
	MaxValue           *float64       `gorm:"type:numeric(15,4)"`
	Choices            datatypes.JSON `gorm:"type:jsonb"`
	IsRequired         bool           `gorm:"default:false"`
	IsActive           bool           `gorm:"default:true;index:idx_variables_category_active"`
	DisplayOrder       int            `gorm:"default:0"`
	UseInRegression    bool           `gorm:"default:true"`
	ParentId           *uuid.UUID     `gorm:"type:uuid;index"`
	Parent             *Variable      `gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE"`
	TransformationRule string         `gorm:"type:text"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
}

func (Variable) TableName() string {
	return "variables"
}
