// Implementation of VariableRepository
package implementation

import (
	"context"
	"errors"

	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/mapper"
	"valuation-catalog-be/internal/model"
	"valuation-catalog-be/internal/repository/contract"
	"valuation-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VariableRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VariableMapper
}

func NewVariableRepository(db *gorm.DB) contract.VariableRepository {
	return &VariableRepositoryImpl{
		db:     db,
		mapper: mapper.NewVariableMapper(),
	}
}

func (r *VariableRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VariableRepositoryImpl) Create(ctx context.Context, variable *entity.Variable) error {
	m := r.mapper.ToModel(variable)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &entity.ValidationError{Field: "code", Err: entity.ErrDuplicateCode}
		}
		return err
	}
	*variable = *r.mapper.ToEntity(m)
	return nil
}

func (r *VariableRepositoryImpl) Update(ctx context.Context, variable *entity.Variable) error {
	m := r.mapper.ToModel(variable)
	// Save with Select("*") so cleared fields (nil bounds, nil choices)
	// overwrite the stored row instead of being skipped as zero values.
	if err := r.db.WithContext(ctx).Model(&model.Variable{}).
		Where("id = ?", m.Id).
		Select("*").Omit("id", "created_at").
		Updates(m).Error; err != nil {
		return err
	}
	refreshed, err := r.FindById(ctx, m.Id)
	if err != nil {
		return err
	}
	if refreshed != nil {
		*variable = *refreshed
	}
	return nil
}

func (r *VariableRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Variable{}, id).Error
}

func (r *VariableRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Variable, error) {
	var m model.Variable
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VariableRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Variable, error) {
	var models []*model.Variable
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VariableRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.Variable, error) {
	return r.FindOne(ctx, specification.ByCode{Code: code})
}

func (r *VariableRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Variable, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *VariableRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Variable{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
