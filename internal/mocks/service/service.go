// Package mockservice provides hand-written testify mocks for the domain
// service interfaces used by the use case tests.
package mockservice

import (
	"context"
	"testing"
	"time"

	"rituality/internal/domain/entity"
	"rituality/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock wired to the test lifecycle.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID, userType entity.UserType) (string, string, error) {
	args := m.Called(userID, userType)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *MockTokenService) GetAccessTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockMailer mocks service.Mailer.
type MockMailer struct {
	mock.Mock
}

// NewMockMailer creates a mock wired to the test lifecycle.
func NewMockMailer(t *testing.T) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) SendVerificationEmail(ctx context.Context, email service.VerificationEmail) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockMailer) SendWelcomeEmail(ctx context.Context, to, name string) error {
	return m.Called(ctx, to, name).Error(0)
}

// MockSearchService mocks service.SearchService.
type MockSearchService struct {
	mock.Mock
}

// NewMockSearchService creates a mock wired to the test lifecycle.
func NewMockSearchService(t *testing.T) *MockSearchService {
	m := &MockSearchService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSearchService) SearchDesigners(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.ProviderSearchResult), args.Error(1)
}

func (m *MockSearchService) SearchContractors(ctx context.Context, query service.ProviderQuery) (*service.ProviderSearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.ProviderSearchResult), args.Error(1)
}

// MockPushSender mocks service.PushSender.
type MockPushSender struct {
	mock.Mock
}

// NewMockPushSender creates a mock wired to the test lifecycle.
func NewMockPushSender(t *testing.T) *MockPushSender {
	m := &MockPushSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPushSender) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	return m.Called(ctx, tokens, title, body, data).Error(0)
}

// MockObjectStore mocks service.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

// NewMockObjectStore creates a mock wired to the test lifecycle.
func NewMockObjectStore(t *testing.T) *MockObjectStore {
	m := &MockObjectStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockObjectStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	return m.Called(ctx, key, contentType, data).Error(0)
}

func (m *MockObjectStore) URL(key string) string {
	return m.Called(key).String(0)
}
