package specification

import "gorm.io/gorm"

// ByRole filters properties by their valuation role (subject/comparable)
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// ByCity filters properties by city (case-insensitive)
type ByCity struct {
	City string
}

func (s ByCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("city ILIKE ?", s.City)
}
