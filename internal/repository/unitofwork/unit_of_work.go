package unitofwork

import (
	"context"

	"valuation-catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	VariableRepository() contract.VariableRepository
	PropertyRepository() contract.PropertyRepository
}
