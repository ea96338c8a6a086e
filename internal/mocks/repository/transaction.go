// Package mockrepository provides hand-written testify mocks for the
// persistence interfaces used by the use case tests.
package mockrepository

import (
	"context"
	"testing"

	"rituality/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock wired to the test lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// StubTransactionManager runs the callback against a fixed factory and
// propagates its error, standing in for commit/rollback semantics.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock wired to the test lifecycle.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) DeviceRepo() repository.DeviceRepository {
	return m.Called().Get(0).(repository.DeviceRepository)
}

func (m *MockRepositoryFactory) VerificationRepo() repository.VerificationRepository {
	return m.Called().Get(0).(repository.VerificationRepository)
}

func (m *MockRepositoryFactory) PropertyRepo() repository.PropertyRepository {
	return m.Called().Get(0).(repository.PropertyRepository)
}

func (m *MockRepositoryFactory) RequestRepo() repository.RequestRepository {
	return m.Called().Get(0).(repository.RequestRepository)
}
