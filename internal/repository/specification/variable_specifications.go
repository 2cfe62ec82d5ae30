package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByCode filters variables by their unique code
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", s.Code)
}

// ActiveOnly keeps variables currently offered for input
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByCategory filters variables by grouping category
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByParentId filters variables derived from the given parent
type ByParentId struct {
	ParentId uuid.UUID
}

func (s ByParentId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id = ?", s.ParentId)
}

// UsedInRegression keeps variables flagged for statistical modeling
type UsedInRegression struct{}

func (s UsedInRegression) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("use_in_regression = ?", true)
}

// CatalogOrder is the canonical presentation order for form generation.
type CatalogOrder struct{}

func (s CatalogOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("category ASC").Order("display_order ASC").Order("name ASC")
}
