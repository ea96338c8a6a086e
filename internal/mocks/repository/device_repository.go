package mockrepository

import (
	"context"
	"testing"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDeviceRepository mocks repository.DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

// NewMockDeviceRepository creates a mock wired to the test lifecycle.
func NewMockDeviceRepository(t *testing.T) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceRepository) Create(ctx context.Context, device *entity.UserDevice) error {
	return m.Called(ctx, device).Error(0)
}

func (m *MockDeviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserDevice), args.Error(1)
}

func (m *MockDeviceRepository) FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.UserDevice, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserDevice), args.Error(1)
}

func (m *MockDeviceRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.UserDevice), args.Error(1)
}

func (m *MockDeviceRepository) Update(ctx context.Context, device *entity.UserDevice) error {
	return m.Called(ctx, device).Error(0)
}

func (m *MockDeviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeviceRepository) DeactivateAllByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockDeviceRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)

	return args.Int(0), args.Error(1)
}

func (m *MockDeviceRepository) DeleteExpired(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockVerificationRepository mocks repository.VerificationRepository.
type MockVerificationRepository struct {
	mock.Mock
}

// NewMockVerificationRepository creates a mock wired to the test lifecycle.
func NewMockVerificationRepository(t *testing.T) *MockVerificationRepository {
	m := &MockVerificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVerificationRepository) Create(ctx context.Context, code *entity.VerificationCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockVerificationRepository) FindActive(ctx context.Context, userID uuid.UUID, kind entity.VerificationKind) (*entity.VerificationCode, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.VerificationCode), args.Error(1)
}

func (m *MockVerificationRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
