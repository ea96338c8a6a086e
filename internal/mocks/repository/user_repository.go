package mockrepository

import (
	"context"
	"testing"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock wired to the test lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePermissions(ctx context.Context, perms *entity.UserPermissions) error {
	return m.Called(ctx, perms).Error(0)
}

func (m *MockUserRepository) SaveHomeownerProfile(ctx context.Context, profile *entity.HomeownerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockUserRepository) SaveDesignerProfile(ctx context.Context, profile *entity.DesignerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockUserRepository) SaveContractorProfile(ctx context.Context, profile *entity.ContractorProfile) error {
	return m.Called(ctx, profile).Error(0)
}
