// Mapper for Variable entity <-> model conversion
package mapper

import (
	"encoding/json"

	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/model"

	"gorm.io/datatypes"
)

type VariableMapper struct{}

func NewVariableMapper() *VariableMapper {
	return &VariableMapper{}
}

// choiceDoc is the JSONB shape of one choice.
type choiceDoc struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func (m *VariableMapper) ToEntity(mdl *model.Variable) *entity.Variable {
	if mdl == nil {
		return nil
	}

	var choices []entity.Choice
	if len(mdl.Choices) > 0 {
		var docs []choiceDoc
		if err := json.Unmarshal(mdl.Choices, &docs); err == nil {
			choices = make([]entity.Choice, 0, len(docs))
			for _, d := range docs {
				choices = append(choices, entity.Choice{Code: d.Code, Label: d.Label})
			}
		}
	}

	return &entity.Variable{
		Id:                 mdl.Id,
		Code:               mdl.Code,
		Name:               mdl.Name,
		Description:        mdl.Description,
		Category:           mdl.Category,
		DataType:           entity.DataType(mdl.DataType),
		Unit:               mdl.Unit,
		MinValue:           mdl.MinValue,
		MaxValue:           mdl.MaxValue,
		Choices:            choices,
		IsRequired:         mdl.IsRequired,
		IsActive:           mdl.IsActive,
		DisplayOrder:       mdl.DisplayOrder,
		UseInRegression:    mdl.UseInRegression,
		ParentId:           mdl.ParentId,
		TransformationRule: mdl.TransformationRule,
		CreatedAt:          mdl.CreatedAt,
		UpdatedAt:          mdl.UpdatedAt,
	}
}

func (m *VariableMapper) ToModel(e *entity.Variable) *model.Variable {
	if e == nil {
		return nil
	}

	var choicesJSON datatypes.JSON
	if len(e.Choices) > 0 {
		docs := make([]choiceDoc, 0, len(e.Choices))
		for _, c := range e.Choices {
			docs = append(docs, choiceDoc{Code: c.Code, Label: c.Label})
		}
		if raw, err := json.Marshal(docs); err == nil {
			choicesJSON = datatypes.JSON(raw)
		}
	}

	return &model.Variable{
		Id:                 e.Id,
		Code:               e.Code,
		Name:               e.Name,
		Description:        e.Description,
		Category:           e.Category,
		DataType:           string(e.DataType),
		Unit:               e.Unit,
		MinValue:           e.MinValue,
		MaxValue:           e.MaxValue,
		Choices:            choicesJSON,
		IsRequired:         e.IsRequired,
		IsActive:           e.IsActive,
		DisplayOrder:       e.DisplayOrder,
		UseInRegression:    e.UseInRegression,
		ParentId:           e.ParentId,
		TransformationRule: e.TransformationRule,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (m *VariableMapper) ToEntities(models []*model.Variable) []*entity.Variable {
	entities := make([]*entity.Variable, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
