// In-memory PropertyRepository for unit tests.
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
)

type PropertyRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*entity.Property
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{
		rows: make(map[uuid.UUID]*entity.Property),
	}
}

var _ contract.PropertyRepository = (*PropertyRepository)(nil)

func cloneProperty(p *entity.Property) *entity.Property {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Values != nil {
		cp.Values = make(map[string]interface{}, len(p.Values))
		for k, v := range p.Values {
			cp.Values[k] = v
		}
	}
	if p.TotalPrice != nil {
		price := *p.TotalPrice
		cp.TotalPrice = &price
	}
	return &cp
}

func (r *PropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.Code == property.Code {
			return &entity.ValidationError{Field: "code", Err: entity.ErrDuplicateCode}
		}
	}

	if property.Id == uuid.Nil {
		property.Id = uuid.New()
	}
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now
	r.rows[property.Id] = cloneProperty(property)
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[property.Id]
	if !ok {
		return entity.ErrNotFound
	}
	property.CreatedAt = existing.CreatedAt
	property.UpdatedAt = time.Now()
	r.rows[property.Id] = cloneProperty(property)
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *PropertyRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Property, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *PropertyRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entity.Property, 0, len(r.rows))
	for _, row := range r.rows {
		if propertyMatches(row, specs) {
			matches = append(matches, cloneProperty(row))
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Code < matches[j].Code
	})
	return matches, nil
}

func (r *PropertyRepository) FindByCode(ctx context.Context, code string) (*entity.Property, error) {
	return r.FindOne(ctx, specification.ByCode{Code: code})
}

func (r *PropertyRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

func propertyMatches(row *entity.Property, specs []specification.Specification) bool {
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
		case specification.ByRole:
			if row.Role != s.Role {
				return false
			}
		case specification.ByCity:
			if row.City != s.City {
				return false
			}
		}
	}
	return true
}
