// Repository interface for the Variable catalog
package contract

import (
	"context"

	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VariableRepository interface {
	Create(ctx context.Context, variable *entity.Variable) error
	Update(ctx context.Context, variable *entity.Variable) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Variable, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Variable, error)
	FindByCode(ctx context.Context, code string) (*entity.Variable, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.Variable, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
