// Catalog service: write semantics for the variable catalog — validation,
// atomic upsert, parent cycle detection, cascade delete.
package service

import (
	"context"
	"encoding/json"
	"time"

	"valuation-catalog-be/internal/dto"
	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/pkg/logger"
	"valuation-catalog-be/internal/repository/contract"
	"valuation-catalog-be/internal/repository/specification"
	"valuation-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// CatalogEvent is the payload published on every catalog mutation.
type CatalogEvent struct {
	Action string `json:"action"` // created, updated, deleted
	Code   string `json:"code"`
}

type ICatalogService interface {
	Create(ctx context.Context, def *dto.VariableDefinition) (*dto.VariableResponse, error)
	Upsert(ctx context.Context, def *dto.VariableDefinition) (*dto.VariableResponse, bool, error)
	Update(ctx context.Context, code string, def *dto.VariableDefinition) (*dto.VariableResponse, error)
	Get(ctx context.Context, code string) (*dto.VariableResponse, error)
	Delete(ctx context.Context, code string) error
	ListActive(ctx context.Context) ([]*dto.VariableResponse, error)
	ListAll(ctx context.Context) ([]*dto.VariableResponse, error)
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

// Create adds a new variable. An already-taken code is an error here; use
// Upsert when replace-on-conflict is wanted.
func (s *catalogService) Create(ctx context.Context, def *dto.VariableDefinition) (*dto.VariableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.VariableRepository()

	existing, err := repo.FindByCode(ctx, def.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &entity.ValidationError{Field: "code", Err: entity.ErrDuplicateCode}
	}

	variable, err := s.buildVariable(ctx, repo, def, nil)
	if err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, variable); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "created", variable.Code)
	return toVariableResponse(variable), nil
}

// Upsert creates the variable when the code is unseen and otherwise fully
// replaces all non-code fields of the existing record. The unit of work
// keeps the read-modify-write atomic so concurrent seed runs never leave a
// half-updated row behind.
func (s *catalogService) Upsert(ctx context.Context, def *dto.VariableDefinition) (*dto.VariableResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}
	defer uow.Rollback()

	repo := uow.VariableRepository()

	existing, err := repo.FindByCode(ctx, def.Code)
	if err != nil {
		return nil, false, err
	}

	variable, err := s.buildVariable(ctx, repo, def, existing)
	if err != nil {
		return nil, false, err
	}

	created := existing == nil
	if created {
		err = repo.Create(ctx, variable)
	} else {
		err = repo.Update(ctx, variable)
	}
	if err != nil {
		return nil, false, err
	}
	if err := uow.Commit(); err != nil {
		return nil, false, err
	}

	if created {
		s.publishEvent(ctx, "created", variable.Code)
	} else {
		s.publishEvent(ctx, "updated", variable.Code)
	}
	return toVariableResponse(variable), created, nil
}

// Update replaces an existing variable; the code must already exist.
func (s *catalogService) Update(ctx context.Context, code string, def *dto.VariableDefinition) (*dto.VariableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.VariableRepository()

	existing, err := repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, entity.ErrNotFound
	}

	def.Code = code // the code is immutable
	variable, err := s.buildVariable(ctx, repo, def, existing)
	if err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, variable); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "updated", variable.Code)
	return toVariableResponse(variable), nil
}

func (s *catalogService) Get(ctx context.Context, code string) (*dto.VariableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	variable, err := uow.VariableRepository().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if variable == nil {
		return nil, entity.ErrNotFound
	}
	return toVariableResponse(variable), nil
}

// Delete removes a variable and, through the parent relationship, every
// variable derived from it. Parent owns its derived children.
func (s *catalogService) Delete(ctx context.Context, code string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.VariableRepository()

	variable, err := repo.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if variable == nil {
		return entity.ErrNotFound
	}

	if err := repo.Delete(ctx, variable.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, "deleted", code)
	return nil
}

// ListActive returns the variables currently offered for input, in the
// canonical presentation order (category, display_order, name).
func (s *catalogService) ListActive(ctx context.Context) ([]*dto.VariableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	variables, err := uow.VariableRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.CatalogOrder{},
	)
	if err != nil {
		return nil, err
	}
	return toVariableResponses(variables), nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]*dto.VariableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	variables, err := uow.VariableRepository().FindAll(ctx, specification.CatalogOrder{})
	if err != nil {
		return nil, err
	}
	return toVariableResponses(variables), nil
}

// buildVariable turns a definition into a validated entity. When existing is
// non-nil its identity (id, code, created_at) is kept and everything else is
// replaced by the definition.
func (s *catalogService) buildVariable(ctx context.Context, repo contract.VariableRepository, def *dto.VariableDefinition, existing *entity.Variable) (*entity.Variable, error) {
	dataType := entity.DataType(def.DataType)
	if !dataType.Valid() {
		return nil, &entity.ValidationError{Field: "data_type", Err: entity.ErrUnknownDataType}
	}

	choices, err := entity.ResolveChoices(def.Choices, def.ChoiceOrder)
	if err != nil {
		return nil, err
	}

	category := def.Category
	if category == "" {
		category = entity.CategoryPhysical
	}

	variable := &entity.Variable{
		Code:               def.Code,
		Name:               def.Name,
		Description:        def.Description,
		Category:           category,
		DataType:           dataType,
		Unit:               def.Unit,
		MinValue:           def.MinValue,
		MaxValue:           def.MaxValue,
		Choices:            choices,
		IsRequired:         def.IsRequired,
		IsActive:           def.IsActive == nil || *def.IsActive,
		DisplayOrder:       def.DisplayOrder,
		UseInRegression:    def.UseInRegression == nil || *def.UseInRegression,
		TransformationRule: def.TransformationRule,
	}
	if existing != nil {
		variable.Id = existing.Id
		variable.CreatedAt = existing.CreatedAt
	}

	if def.ParentCode != "" {
		parent, err := repo.FindByCode(ctx, def.ParentCode)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, &entity.ValidationError{Field: "parent_code", Err: entity.ErrNotFound}
		}
		variable.ParentId = &parent.Id
	}

	hadChoices := len(variable.Choices) > 0
	if err := variable.Validate(); err != nil {
		return nil, err
	}
	if hadChoices && len(variable.Choices) == 0 {
		// intentional normalization, not an error
		s.logger.Info("catalog", "cleared choice metadata for non-choice variable", map[string]interface{}{
			"code":      variable.Code,
			"data_type": string(variable.DataType),
		})
	}

	if err := s.checkParentCycle(ctx, repo, variable); err != nil {
		return nil, err
	}

	variable.UpdatedAt = time.Now()
	return variable, nil
}

// checkParentCycle walks the ancestor chain of the proposed record. The walk
// is bounded by the visited set; revisiting any node, including the record
// itself, rejects the write.
func (s *catalogService) checkParentCycle(ctx context.Context, repo contract.VariableRepository, variable *entity.Variable) error {
	if variable.ParentId == nil {
		return nil
	}

	visited := map[uuid.UUID]bool{}
	if variable.Id != uuid.Nil {
		visited[variable.Id] = true
	}

	current := variable.ParentId
	for current != nil {
		if visited[*current] {
			return &entity.ValidationError{Field: "parent_variable", Err: entity.ErrCyclicParent}
		}
		visited[*current] = true

		ancestor, err := repo.FindById(ctx, *current)
		if err != nil {
			return err
		}
		if ancestor == nil {
			return &entity.ValidationError{Field: "parent_variable", Err: entity.ErrNotFound}
		}
		current = ancestor.ParentId
	}
	return nil
}

func (s *catalogService) publishEvent(ctx context.Context, action, code string) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(CatalogEvent{Action: action, Code: code})
	if err != nil {
		return
	}
	// catalog writes succeed even when the notification does not
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("catalog", "failed to publish catalog event", map[string]interface{}{
			"action": action,
			"code":   code,
			"error":  err.Error(),
		})
	}
}

func toVariableResponse(v *entity.Variable) *dto.VariableResponse {
	if v == nil {
		return nil
	}
	var choices []dto.ChoiceDTO
	for _, c := range v.Choices {
		choices = append(choices, dto.ChoiceDTO{Code: c.Code, Label: c.Label})
	}
	return &dto.VariableResponse{
		Id:                 v.Id,
		Code:               v.Code,
		Name:               v.Name,
		Description:        v.Description,
		Category:           v.Category,
		DataType:           string(v.DataType),
		Unit:               v.Unit,
		MinValue:           v.MinValue,
		MaxValue:           v.MaxValue,
		Choices:            choices,
		IsRequired:         v.IsRequired,
		IsActive:           v.IsActive,
		DisplayOrder:       v.DisplayOrder,
		UseInRegression:    v.UseInRegression,
		ParentId:           v.ParentId,
		TransformationRule: v.TransformationRule,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func toVariableResponses(variables []*entity.Variable) []*dto.VariableResponse {
	result := make([]*dto.VariableResponse, 0, len(variables))
	for _, v := range variables {
		result = append(result, toVariableResponse(v))
	}
	return result
}
