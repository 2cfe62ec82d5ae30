// Mapper for Property entity <-> model conversion
package mapper

import (
	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/model"

	"gorm.io/datatypes"
)

type PropertyMapper struct{}

func NewPropertyMapper() *PropertyMapper {
	return &PropertyMapper{}
}

func (m *PropertyMapper) ToEntity(mdl *model.Property) *entity.Property {
	if mdl == nil {
		return nil
	}
	return &entity.Property{
		Id:         mdl.Id,
		Code:       mdl.Code,
		Role:       mdl.Role,
		Street:     mdl.Street,
		Number:     mdl.Number,
		District:   mdl.District,
		City:       mdl.City,
		State:      mdl.State,
		TotalPrice: mdl.TotalPrice,
		Values:     map[string]interface{}(mdl.Values),
		CreatedAt:  mdl.CreatedAt,
		UpdatedAt:  mdl.UpdatedAt,
	}
}

func (m *PropertyMapper) ToModel(e *entity.Property) *model.Property {
	if e == nil {
		return nil
	}
	return &model.Property{
		Id:         e.Id,
		Code:       e.Code,
		Role:       e.Role,
		Street:     e.Street,
		Number:     e.Number,
		District:   e.District,
		City:       e.City,
		State:      e.State,
		TotalPrice: e.TotalPrice,
		Values:     datatypes.JSONMap(e.Values),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (m *PropertyMapper) ToEntities(models []*model.Property) []*entity.Property {
	entities := make([]*entity.Property, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
