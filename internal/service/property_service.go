// Property service: registration of subject/comparable properties with
// observed values validated against the active variable catalog.
package service

import (
	"context"
	"fmt"

	"valuation-catalog-be/internal/dto"
	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/pkg/logger"
	"valuation-catalog-be/internal/repository/specification"
	"valuation-catalog-be/internal/repository/unitofwork"
	"valuation-catalog-be/pkg/rules"
)

// RecordValidationError carries per-variable failures of a property write.
type RecordValidationError struct {
	Fields []rules.FieldError
}

func (e *RecordValidationError) Error() string {
	return fmt.Sprintf("property values failed validation on %d variable(s)", len(e.Fields))
}

type IPropertyService interface {
	Create(ctx context.Context, req *dto.PropertyRequest) (*dto.PropertyResponse, error)
	Update(ctx context.Context, code string, req *dto.PropertyRequest) (*dto.PropertyResponse, error)
	Get(ctx context.Context, code string) (*dto.PropertyResponse, error)
	List(ctx context.Context, role string) ([]*dto.PropertyResponse, error)
	Delete(ctx context.Context, code string) error
}

type propertyService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPropertyService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IPropertyService {
	return &propertyService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *propertyService) Create(ctx context.Context, req *dto.PropertyRequest) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.PropertyRepository().FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &entity.ValidationError{Field: "code", Err: entity.ErrDuplicateCode}
	}

	if err := s.validateValues(ctx, uow, req.Values); err != nil {
		return nil, err
	}

	property := toPropertyEntity(req)
	if err := uow.PropertyRepository().Create(ctx, property); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

func (s *propertyService) Update(ctx context.Context, code string, req *dto.PropertyRequest) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.PropertyRepository().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, entity.ErrNotFound
	}

	if err := s.validateValues(ctx, uow, req.Values); err != nil {
		return nil, err
	}

	req.Code = code
	property := toPropertyEntity(req)
	property.Id = existing.Id
	property.CreatedAt = existing.CreatedAt
	if err := uow.PropertyRepository().Update(ctx, property); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toPropertyResponse(property), nil
}

func (s *propertyService) Get(ctx context.Context, code string) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	property, err := uow.PropertyRepository().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, entity.ErrNotFound
	}
	return toPropertyResponse(property), nil
}

func (s *propertyService) List(ctx context.Context, role string) ([]*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if role != "" {
		specs = append(specs, specification.ByRole{Role: role})
	}

	properties, err := uow.PropertyRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		result = append(result, toPropertyResponse(p))
	}
	return result, nil
}

func (s *propertyService) Delete(ctx context.Context, code string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	property, err := uow.PropertyRepository().FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if property == nil {
		return entity.ErrNotFound
	}
	return uow.PropertyRepository().Delete(ctx, property.Id)
}

// validateValues checks the observed values against the active catalog.
func (s *propertyService) validateValues(ctx context.Context, uow unitofwork.UnitOfWork, values map[string]interface{}) error {
	variables, err := uow.VariableRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return err
	}
	if fieldErrs := rules.ValidateRecord(variables, values); len(fieldErrs) > 0 {
		return &RecordValidationError{Fields: fieldErrs}
	}
	return nil
}

func toPropertyEntity(req *dto.PropertyRequest) *entity.Property {
	return &entity.Property{
		Code:       req.Code,
		Role:       req.Role,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		TotalPrice: req.TotalPrice,
		Values:     req.Values,
	}
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	if p == nil {
		return nil
	}
	return &dto.PropertyResponse{
		Id:         p.Id,
		Code:       p.Code,
		Role:       p.Role,
		Street:     p.Street,
		Number:     p.Number,
		District:   p.District,
		City:       p.City,
		State:      p.State,
		TotalPrice: p.TotalPrice,
		Values:     p.Values,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
