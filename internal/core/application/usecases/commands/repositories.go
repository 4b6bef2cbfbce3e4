// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/KimJinHyeon0/vroom/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProblemRepoFactory provides access to the problem repository within a transaction.
	ProblemRepoFactory interface {
		ProblemRepository() ports.ProblemRepository
	}

	// ProblemUoW manages transactions for problem operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.ProblemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ProblemUoW interface {
		TxManager
		ProblemRepoFactory
	}

	// ProblemUoWFactory creates new problem unit of work instances.
	ProblemUoWFactory interface {
		Create() ProblemUoW
	}
)
