// Memory-backed unit of work so services can be exercised without a
// database. Begin/Commit/Rollback are no-ops: the fake repositories apply
// every call under their own lock.
package memory

import (
	"context"

	"valuation-catalog-be/internal/repository/contract"
	"valuation-catalog-be/internal/repository/unitofwork"
)

type RepositoryFactory struct {
	Variables  *VariableRepository
	Properties *PropertyRepository
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		Variables:  NewVariableRepository(),
		Properties: NewPropertyRepository(),
	}
}

var _ unitofwork.RepositoryFactory = (*RepositoryFactory)(nil)

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{factory: f}
}

type unitOfWork struct {
	factory *RepositoryFactory
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) VariableRepository() contract.VariableRepository {
	return u.factory.Variables
}

func (u *unitOfWork) PropertyRepository() contract.PropertyRepository {
	return u.factory.Properties
}
