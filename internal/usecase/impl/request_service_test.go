package impl

import (
	"context"
	"testing"
	"time"

	"rituality/internal/domain/entity"
	domainerrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	mockrepo "rituality/internal/mocks/repository"
	mocksvc "rituality/internal/mocks/service"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service      usecase.RequestUsecase
	factory      *mockrepo.MockRepositoryFactory
	userRepo     *mockrepo.MockUserRepository
	propertyRepo *mockrepo.MockPropertyRepository
	requestRepo  *mockrepo.MockRequestRepository
	deviceRepo   *mockrepo.MockDeviceRepository
	pushSender   *mocksvc.MockPushSender
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	factory := mockrepo.NewMockRepositoryFactory(t)
	userRepo := mockrepo.NewMockUserRepository(t)
	propertyRepo := mockrepo.NewMockPropertyRepository(t)
	requestRepo := mockrepo.NewMockRequestRepository(t)
	deviceRepo := mockrepo.NewMockDeviceRepository(t)
	pushSender := mocksvc.NewMockPushSender(t)

	service := NewRequestService(RequestServiceParams{
		TxManager:    &mockrepo.StubTransactionManager{Factory: factory},
		UserRepo:     userRepo,
		PropertyRepo: propertyRepo,
		RequestRepo:  requestRepo,
		DeviceRepo:   deviceRepo,
		PushSender:   pushSender,
		Logger:       newDiscardLogger(),
	})

	return requestServiceFixtures{
		service:      service,
		factory:      factory,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		requestRepo:  requestRepo,
		deviceRepo:   deviceRepo,
		pushSender:   pushSender,
	}
}

func TestRequestService_SendRequest_Success(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	homeownerID := uuid.New()
	designerID := uuid.New()
	project := &entity.Project{ID: uuid.New(), HomeownerID: homeownerID}

	fixtures.propertyRepo.On("FindProjectByID", ctx, project.ID).Return(project, nil)
	fixtures.userRepo.On("FindByID", ctx, designerID).
		Return(&entity.User{ID: designerID, UserType: entity.UserTypeDesigner}, nil)
	fixtures.requestRepo.On("CreateRequest", ctx, mock.AnythingOfType("*entity.Request")).Return(nil)

	request, err := fixtures.service.SendRequest(ctx, &usecase.SendRequestInput{
		HomeownerID: homeownerID,
		ProjectID:   project.ID,
		DesignerID:  designerID,
		Message:     "Please have a look at our kitchen.",
	})

	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, entity.RequestStatusSent, request.Status)
	assert.Equal(t, designerID, request.DesignerID)
}

func TestRequestService_SendRequest_ForeignProjectLooksMissing(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	project := &entity.Project{ID: uuid.New(), HomeownerID: uuid.New()}

	fixtures.propertyRepo.On("FindProjectByID", ctx, project.ID).Return(project, nil)

	request, err := fixtures.service.SendRequest(ctx, &usecase.SendRequestInput{
		HomeownerID: uuid.New(), // Not the project owner.
		ProjectID:   project.ID,
		DesignerID:  uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRequestService_SendRequest_TargetNotADesigner(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	homeownerID := uuid.New()
	targetID := uuid.New()
	project := &entity.Project{ID: uuid.New(), HomeownerID: homeownerID}

	fixtures.propertyRepo.On("FindProjectByID", ctx, project.ID).Return(project, nil)
	fixtures.userRepo.On("FindByID", ctx, targetID).
		Return(&entity.User{ID: targetID, UserType: entity.UserTypeContractor}, nil)

	request, err := fixtures.service.SendRequest(ctx, &usecase.SendRequestInput{
		HomeownerID: homeownerID,
		ProjectID:   project.ID,
		DesignerID:  targetID,
	})

	require.Error(t, err)
	assert.Nil(t, request)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_AcceptProposal_ClosesRequestAndRejectsSiblings(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	homeownerID := uuid.New()
	request := &entity.Request{
		ID:          uuid.New(),
		HomeownerID: homeownerID,
		Status:      entity.RequestStatusProposed,
	}
	winner := &entity.Proposal{
		ID:        uuid.New(),
		RequestID: request.ID,
		Status:    entity.ProposalStatusSent,
	}
	openSibling := &entity.Proposal{
		ID:        uuid.New(),
		RequestID: request.ID,
		Status:    entity.ProposalStatusSent,
	}
	rejectedSibling := &entity.Proposal{
		ID:        uuid.New(),
		RequestID: request.ID,
		Status:    entity.ProposalStatusRejected,
	}

	fixtures.factory.On("RequestRepo").Return(fixtures.requestRepo)

	fixtures.requestRepo.On("FindProposalByID", ctx, winner.ID).Return(winner, nil)
	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)
	fixtures.requestRepo.On("UpdateProposal", ctx, winner).Return(nil)
	fixtures.requestRepo.On("UpdateRequest", ctx, request).Return(nil)
	fixtures.requestRepo.On("FindProposalsByRequest", ctx, request.ID).
		Return([]*entity.Proposal{winner, openSibling, rejectedSibling}, nil)
	fixtures.requestRepo.On("UpdateProposal", ctx, openSibling).Return(nil)

	accepted, err := fixtures.service.AcceptProposal(ctx, homeownerID, winner.ID)

	require.NoError(t, err)
	require.NotNil(t, accepted)
	assert.Equal(t, entity.ProposalStatusAccepted, accepted.Status)
	assert.Equal(t, entity.RequestStatusClosed, request.Status)
	assert.Equal(t, entity.ProposalStatusRejected, openSibling.Status)
}

func TestRequestService_AcceptProposal_AlreadyDecided(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	homeownerID := uuid.New()
	request := &entity.Request{ID: uuid.New(), HomeownerID: homeownerID, Status: entity.RequestStatusClosed}
	proposal := &entity.Proposal{
		ID:        uuid.New(),
		RequestID: request.ID,
		Status:    entity.ProposalStatusRejected,
	}

	fixtures.factory.On("RequestRepo").Return(fixtures.requestRepo)
	fixtures.requestRepo.On("FindProposalByID", ctx, proposal.ID).Return(proposal, nil)
	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)

	accepted, err := fixtures.service.AcceptProposal(ctx, homeownerID, proposal.ID)

	require.Error(t, err)
	assert.Nil(t, accepted)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))
}

func TestRequestService_AcceptProposal_ForeignProposalLooksMissing(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	request := &entity.Request{ID: uuid.New(), HomeownerID: uuid.New()}
	proposal := &entity.Proposal{ID: uuid.New(), RequestID: request.ID, Status: entity.ProposalStatusSent}

	fixtures.factory.On("RequestRepo").Return(fixtures.requestRepo)
	fixtures.requestRepo.On("FindProposalByID", ctx, proposal.ID).Return(proposal, nil)
	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)

	accepted, err := fixtures.service.AcceptProposal(ctx, uuid.New(), proposal.ID)

	require.Error(t, err)
	assert.Nil(t, accepted)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRequestService_DeclineRequest_Success(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	designerID := uuid.New()
	request := &entity.Request{ID: uuid.New(), DesignerID: designerID, Status: entity.RequestStatusSent}

	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)
	fixtures.requestRepo.On("UpdateRequest", ctx, request).Return(nil)

	declined, err := fixtures.service.DeclineRequest(ctx, designerID, request.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusDeclined, declined.Status)
}

func TestRequestService_DeclineRequest_AfterProposal(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	designerID := uuid.New()
	request := &entity.Request{ID: uuid.New(), DesignerID: designerID, Status: entity.RequestStatusProposed}

	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)

	declined, err := fixtures.service.DeclineRequest(ctx, designerID, request.ID)

	require.Error(t, err)
	assert.Nil(t, declined)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))
}

func TestRequestService_SubmitProposal_PushesToHomeownerDevices(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	designerID := uuid.New()
	homeownerID := uuid.New()
	request := &entity.Request{
		ID:          uuid.New(),
		HomeownerID: homeownerID,
		DesignerID:  designerID,
		Status:      entity.RequestStatusSent,
	}
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: homeownerID, FCMToken: "token-a", IsActive: true, RefreshExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: homeownerID, FCMToken: "", IsActive: true, RefreshExpiresAt: time.Now().Add(time.Hour)},
	}

	fixtures.factory.On("RequestRepo").Return(fixtures.requestRepo)
	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)
	fixtures.requestRepo.On("CreateProposal", ctx, mock.AnythingOfType("*entity.Proposal")).Return(nil)
	fixtures.requestRepo.On("UpdateRequest", ctx, request).Return(nil)

	fixtures.deviceRepo.On("FindActiveByUserID", ctx, homeownerID).Return(devices, nil)
	fixtures.pushSender.On("SendToTokens", ctx, []string{"token-a"},
		mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(nil)

	proposal, err := fixtures.service.SubmitProposal(ctx, &usecase.SubmitProposalInput{
		DesignerID:   designerID,
		RequestID:    request.ID,
		Summary:      "Scandinavian refresh",
		PriceCents:   250_000,
		LeadTimeDays: 30,
	})

	require.NoError(t, err)
	require.NotNil(t, proposal)
	assert.Equal(t, entity.ProposalStatusSent, proposal.Status)
	assert.Equal(t, entity.RequestStatusProposed, request.Status)
}

func TestRequestService_SubmitProposal_DeclinedRequest(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	designerID := uuid.New()
	request := &entity.Request{
		ID:         uuid.New(),
		DesignerID: designerID,
		Status:     entity.RequestStatusDeclined,
	}

	fixtures.factory.On("RequestRepo").Return(fixtures.requestRepo)
	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)

	proposal, err := fixtures.service.SubmitProposal(ctx, &usecase.SubmitProposalInput{
		DesignerID: designerID,
		RequestID:  request.ID,
	})

	require.Error(t, err)
	assert.Nil(t, proposal)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStateTransition))
}

func TestRequestService_SubmitProposal_PushFailureDoesNotSurface(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	designerID := uuid.New()
	homeownerID := uuid.New()
	request := &entity.Request{
		ID:          uuid.New(),
		HomeownerID: homeownerID,
		DesignerID:  designerID,
		Status:      entity.RequestStatusSent,
	}

	fixtures.factory.On("RequestRepo").Return(fixtures.requestRepo)
	fixtures.requestRepo.On("FindRequestByID", ctx, request.ID).Return(request, nil)
	fixtures.requestRepo.On("CreateProposal", ctx, mock.AnythingOfType("*entity.Proposal")).Return(nil)
	fixtures.requestRepo.On("UpdateRequest", ctx, request).Return(nil)

	fixtures.deviceRepo.On("FindActiveByUserID", ctx, homeownerID).
		Return(nil, repository.ErrDeviceNotFound)

	proposal, err := fixtures.service.SubmitProposal(ctx, &usecase.SubmitProposalInput{
		DesignerID: designerID,
		RequestID:  request.ID,
		Summary:    "Quiet luxury",
	})

	require.NoError(t, err)
	require.NotNil(t, proposal)
	fixtures.pushSender.AssertNotCalled(t, "SendToTokens",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_ListProjectRequests_ChecksOwnership(t *testing.T) {
	fixtures := createTestRequestService(t)

	ctx := context.Background()
	homeownerID := uuid.New()
	project := &entity.Project{ID: uuid.New(), HomeownerID: homeownerID}
	stored := []*entity.Request{{ID: uuid.New(), ProjectID: project.ID, HomeownerID: homeownerID}}

	fixtures.propertyRepo.On("FindProjectByID", ctx, project.ID).Return(project, nil)
	fixtures.requestRepo.On("FindRequestsByProject", ctx, project.ID).Return(stored, nil)

	requests, err := fixtures.service.ListProjectRequests(ctx, homeownerID, project.ID)

	require.NoError(t, err)
	assert.Len(t, requests, 1)

	fixtures.propertyRepo.On("FindProjectByID", ctx, project.ID).Return(project, nil)
	_, err = fixtures.service.ListProjectRequests(ctx, uuid.New(), project.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
