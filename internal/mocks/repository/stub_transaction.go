package repository

import (
	"context"

	"fixflow/internal/domain/repository"
)

// StubTransactionManager runs the given function directly against a fixed set
// of repositories, without real transaction semantics. Intended for tests.
type StubTransactionManager struct {
	Maintenance repository.MaintenanceRepository
	Supply      repository.SupplyRepository
	User        repository.UserRepository
	Message     repository.MessageRepository
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *StubTransactionManager) MaintenanceRepo() repository.MaintenanceRepository {
	return s.Maintenance
}

func (s *StubTransactionManager) SupplyRepo() repository.SupplyRepository {
	return s.Supply
}

func (s *StubTransactionManager) UserRepo() repository.UserRepository {
	return s.User
}

func (s *StubTransactionManager) MessageRepo() repository.MessageRepository {
	return s.Message
}
