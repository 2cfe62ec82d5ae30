// In-memory VariableRepository used by unit tests and the seeder dry-run
// path. Mirrors the behavior of the GORM implementation, including the
// cascade delete the database enforces through the parent foreign key.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/repository/contract"
	"valuation-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type VariableRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*entity.Variable
}

func NewVariableRepository() *VariableRepository {
	return &VariableRepository{
		rows: make(map[uuid.UUID]*entity.Variable),
	}
}

var _ contract.VariableRepository = (*VariableRepository)(nil)

func cloneVariable(v *entity.Variable) *entity.Variable {
	if v == nil {
		return nil
	}
	cp := *v
	if v.Choices != nil {
		cp.Choices = append([]entity.Choice(nil), v.Choices...)
	}
	if v.MinValue != nil {
		mn := *v.MinValue
		cp.MinValue = &mn
	}
	if v.MaxValue != nil {
		mx := *v.MaxValue
		cp.MaxValue = &mx
	}
	if v.ParentId != nil {
		pid := *v.ParentId
		cp.ParentId = &pid
	}
	return &cp
}

func (r *VariableRepository) Create(ctx context.Context, variable *entity.Variable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.Code == variable.Code {
			return &entity.ValidationError{Field: "code", Err: entity.ErrDuplicateCode}
		}
	}

	if variable.Id == uuid.Nil {
		variable.Id = uuid.New()
	}
	now := time.Now()
	variable.CreatedAt = now
	variable.UpdatedAt = now
	r.rows[variable.Id] = cloneVariable(variable)
	return nil
}

func (r *VariableRepository) Update(ctx context.Context, variable *entity.Variable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[variable.Id]
	if !ok {
		return entity.ErrNotFound
	}
	variable.CreatedAt = existing.CreatedAt
	variable.UpdatedAt = time.Now()
	r.rows[variable.Id] = cloneVariable(variable)
	return nil
}

func (r *VariableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCascade(id)
	return nil
}

// deleteCascade removes the row and, like ON DELETE CASCADE, every variable
// derived from it, transitively.
func (r *VariableRepository) deleteCascade(id uuid.UUID) {
	delete(r.rows, id)
	for childId, row := range r.rows {
		if row.ParentId != nil && *row.ParentId == id {
			r.deleteCascade(childId)
		}
	}
}

func (r *VariableRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Variable, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *VariableRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Variable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entity.Variable, 0, len(r.rows))
	for _, row := range r.rows {
		if matchesSpecs(row, specs) {
			matches = append(matches, cloneVariable(row))
		}
	}

	if hasCatalogOrder(specs) {
		// Names carry accented pt-BR text, so the tiebreak must use locale
		// collation like the database does; a bytewise compare would sort
		// "Área" after "Piscina". Collators are not safe for concurrent
		// use, hence one per call.
		coll := collate.New(language.BrazilianPortuguese)
		sort.Slice(matches, func(i, j int) bool {
			a, b := matches[i], matches[j]
			if a.Category != b.Category {
				return a.Category < b.Category
			}
			if a.DisplayOrder != b.DisplayOrder {
				return a.DisplayOrder < b.DisplayOrder
			}
			return coll.CompareString(a.Name, b.Name) < 0
		})
	} else {
		sort.Slice(matches, func(i, j int) bool {
			return matches[i].Code < matches[j].Code
		})
	}
	return matches, nil
}

func (r *VariableRepository) FindByCode(ctx context.Context, code string) (*entity.Variable, error) {
	return r.FindOne(ctx, specification.ByCode{Code: code})
}

func (r *VariableRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Variable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return cloneVariable(row), nil
}

func (r *VariableRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

// matchesSpecs interprets the catalog specifications against an in-memory
// row. Only filters the catalog and seeder actually use are supported.
func matchesSpecs(row *entity.Variable, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByCode:
			if row.Code != s.Code {
				return false
			}
		case specification.ByID:
			if row.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !row.IsActive {
				return false
			}
		case specification.ByCategory:
			if row.Category != s.Category {
				return false
			}
		case specification.ByParentId:
			if row.ParentId == nil || *row.ParentId != s.ParentId {
				return false
			}
		case specification.UsedInRegression:
			if !row.UseInRegression {
				return false
			}
		case specification.CatalogOrder:
			// ordering, handled after filtering
		}
	}
	return true
}

func hasCatalogOrder(specs []specification.Specification) bool {
	for _, spec := range specs {
		if _, ok := spec.(specification.CatalogOrder); ok {
			return true
		}
	}
	return false
}
