package mockrepository

import (
	"context"
	"testing"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository mocks repository.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

// NewMockPropertyRepository creates a mock wired to the test lifecycle.
func NewMockPropertyRepository(t *testing.T) *MockPropertyRepository {
	m := &MockPropertyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPropertyRepository) CreateProperty(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindPropertiesByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*entity.Property, error) {
	args := m.Called(ctx, homeownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Property), args.Error(1)
}

func (m *MockPropertyRepository) UpdateProperty(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPropertyRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockPropertyRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockPropertyRepository) FindProjectsByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*entity.Project, error) {
	args := m.Called(ctx, homeownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Project), args.Error(1)
}
