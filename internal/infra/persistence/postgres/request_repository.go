package postgres

import (
	"context"

	"rituality/internal/domain/entity"
	domainErrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	"rituality/internal/errors"
	"rituality/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// requestRepository is the GORM implementation of the domain's RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

// CreateRequest persists a new request in the "sent" state.
func (r *requestRepository) CreateRequest(ctx context.Context, request *entity.Request) error {
	requestModel := fromRequestEntity(request)

	if err := r.db.WithContext(ctx).Create(requestModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProjectNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestModel.ID
	request.CreatedAt = requestModel.CreatedAt
	request.UpdatedAt = requestModel.UpdatedAt

	return nil
}

// FindRequestByID retrieves a request by its unique ID.
func (r *requestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestModel model.RequestModel
	err := r.db.WithContext(ctx).First(&requestModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find request")
	}

	return toRequestEntity(&requestModel), nil
}

// FindRequestsByProject retrieves all requests raised under a project, newest first.
func (r *requestRepository) FindRequestsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Request, error) {
	var requestModels []model.RequestModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to list requests by project")
	}

	return toRequestEntities(requestModels), nil
}

// FindRequestsByDesigner retrieves all requests addressed to a designer, newest first.
func (r *requestRepository) FindRequestsByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Request, error) {
	var requestModels []model.RequestModel
	err := r.db.WithContext(ctx).
		Where("designer_id = ?", designerID).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to list requests by designer")
	}

	return toRequestEntities(requestModels), nil
}

// UpdateRequest modifies an existing request.
func (r *requestRepository) UpdateRequest(ctx context.Context, request *entity.Request) error {
	result := r.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"message": request.Message,
			"status":  string(request.Status),
		})
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to update request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// CreateProposal persists a new proposal in the "sent" state.
func (r *requestRepository) CreateProposal(ctx context.Context, proposal *entity.Proposal) error {
	proposalModel := fromProposalEntity(proposal)

	if err := r.db.WithContext(ctx).Create(proposalModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRequestNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to create proposal")
	}

	proposal.ID = proposalModel.ID
	proposal.CreatedAt = proposalModel.CreatedAt
	proposal.UpdatedAt = proposalModel.UpdatedAt

	return nil
}

// FindProposalByID retrieves a proposal by its unique ID.
func (r *requestRepository) FindProposalByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	var proposalModel model.ProposalModel
	err := r.db.WithContext(ctx).First(&proposalModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProposalNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find proposal")
	}

	return toProposalEntity(&proposalModel), nil
}

// FindProposalsByProject retrieves all proposals raised against a project's requests.
func (r *requestRepository) FindProposalsByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Proposal, error) {
	var proposalModels []model.ProposalModel
	err := r.db.WithContext(ctx).
		Joins("JOIN requests ON requests.id = proposals.request_id").
		Where("requests.project_id = ?", projectID).
		Order("proposals.created_at DESC").
		Find(&proposalModels).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to list proposals by project")
	}

	return toProposalEntities(proposalModels), nil
}

// FindProposalsByRequest retrieves all proposals answering one request, newest first.
func (r *requestRepository) FindProposalsByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Proposal, error) {
	var proposalModels []model.ProposalModel
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&proposalModels).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to list proposals by request")
	}

	return toProposalEntities(proposalModels), nil
}

// UpdateProposal modifies an existing proposal.
func (r *requestRepository) UpdateProposal(ctx context.Context, proposal *entity.Proposal) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProposalModel{}).
		Where("id = ?", proposal.ID).
		Updates(map[string]any{
			"summary":        proposal.Summary,
			"price_cents":    proposal.PriceCents,
			"lead_time_days": proposal.LeadTimeDays,
			"status":         string(proposal.Status),
		})
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to update proposal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProposalNotFound
	}

	return nil
}

func toRequestEntity(m *model.RequestModel) *entity.Request {
	return &entity.Request{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		HomeownerID: m.HomeownerID,
		DesignerID:  m.DesignerID,
		Message:     m.Message,
		Status:      entity.RequestStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRequestEntities(models []model.RequestModel) []*entity.Request {
	requests := make([]*entity.Request, 0, len(models))
	for i := range models {
		requests = append(requests, toRequestEntity(&models[i]))
	}

	return requests
}

func fromRequestEntity(e *entity.Request) *model.RequestModel {
	return &model.RequestModel{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		HomeownerID: e.HomeownerID,
		DesignerID:  e.DesignerID,
		Message:     e.Message,
		Status:      string(e.Status),
	}
}

func toProposalEntity(m *model.ProposalModel) *entity.Proposal {
	return &entity.Proposal{
		ID:           m.ID,
		RequestID:    m.RequestID,
		DesignerID:   m.DesignerID,
		Summary:      m.Summary,
		PriceCents:   m.PriceCents,
		LeadTimeDays: m.LeadTimeDays,
		Status:       entity.ProposalStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProposalEntities(models []model.ProposalModel) []*entity.Proposal {
	proposals := make([]*entity.Proposal, 0, len(models))
	for i := range models {
		proposals = append(proposals, toProposalEntity(&models[i]))
	}

	return proposals
}

func fromProposalEntity(e *entity.Proposal) *model.ProposalModel {
	return &model.ProposalModel{
		ID:           e.ID,
		RequestID:    e.RequestID,
		DesignerID:   e.DesignerID,
		Summary:      e.Summary,
		PriceCents:   e.PriceCents,
		LeadTimeDays: e.LeadTimeDays,
		Status:       string(e.Status),
	}
}
