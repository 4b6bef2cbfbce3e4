package commands_test

import (
	"context"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/commands"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) Add(ctx context.Context, aggregate *problem.Problem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProblemRepository) Update(ctx context.Context, aggregate *problem.Problem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*problem.Problem), args.Error(1)
}

func (m *MockProblemRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockProblemUoW struct {
	mock.Mock
}

func (m *MockProblemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

type MockProblemUoWFactory struct {
	mock.Mock
}

func (m *MockProblemUoWFactory) Create() commands.ProblemUoW {
	args := m.Called()
	return args.Get(0).(commands.ProblemUoW)
}
