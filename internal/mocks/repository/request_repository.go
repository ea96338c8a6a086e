package mockrepository

import (
	"context"
	"testing"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRequestRepository mocks repository.RequestRepository.
type MockRequestRepository struct {
	mock.Mock
}

// NewMockRequestRepository creates a mock wired to the test lifecycle.
func NewMockRequestRepository(t *testing.T) *MockRequestRepository {
	m := &MockRequestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRequestRepository) CreateRequest(ctx context.Context, request *entity.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) FindRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Request, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) FindRequestsByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Request, error) {
	args := m.Called(ctx, designerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Request), args.Error(1)
}

func (m *MockRequestRepository) UpdateRequest(ctx context.Context, request *entity.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockRequestRepository) CreateProposal(ctx context.Context, proposal *entity.Proposal) error {
	return m.Called(ctx, proposal).Error(0)
}

func (m *MockRequestRepository) FindProposalByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Proposal), args.Error(1)
}

func (m *MockRequestRepository) FindProposalsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Proposal, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Proposal), args.Error(1)
}

func (m *MockRequestRepository) FindProposalsByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Proposal, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Proposal), args.Error(1)
}

func (m *MockRequestRepository) UpdateProposal(ctx context.Context, proposal *entity.Proposal) error {
	return m.Called(ctx, proposal).Error(0)
}
