package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside one Execute call shares a connection.
type RepositoryFactory interface {
	// MaintenanceRepo returns a MaintenanceRepository bound to the current transaction.
	MaintenanceRepo() MaintenanceRepository

	// SupplyRepo returns a SupplyRepository bound to the current transaction.
	SupplyRepo() SupplyRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// MessageRepo returns a MessageRepository bound to the current transaction.
	MessageRepo() MessageRepository
}
