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

// propertyRepository is the GORM implementation of the domain's PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// CreateProperty persists a new property.
func (r *propertyRepository) CreateProperty(ctx context.Context, property *entity.Property) error {
	propertyModel := fromPropertyEntity(property)

	if err := r.db.WithContext(ctx).Create(propertyModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = propertyModel.ID
	property.CreatedAt = propertyModel.CreatedAt
	property.UpdatedAt = propertyModel.UpdatedAt

	return nil
}

// FindPropertyByID retrieves a property by its unique ID.
func (r *propertyRepository) FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	err := r.db.WithContext(ctx).First(&propertyModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find property")
	}

	return toPropertyEntity(&propertyModel), nil
}

// FindPropertiesByHomeowner retrieves all properties of a homeowner, newest first.
func (r *propertyRepository) FindPropertiesByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*entity.Property, error) {
	var propertyModels []model.PropertyModel
	err := r.db.WithContext(ctx).
		Where("homeowner_id = ?", homeownerID).
		Order("created_at DESC").
		Find(&propertyModels).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for i := range propertyModels {
		properties = append(properties, toPropertyEntity(&propertyModels[i]))
	}

	return properties, nil
}

// UpdateProperty modifies an existing property.
func (r *propertyRepository) UpdateProperty(ctx context.Context, property *entity.Property) error {
	updates := map[string]any{
		"label":         property.Label,
		"address_line":  property.AddressLine,
		"city":          property.City,
		"postal_code":   property.PostalCode,
		"property_type": property.PropertyType,
		"rooms":         property.Rooms,
		"area_sqm":      property.AreaSqm,
	}

	result := r.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", property.ID).
		Updates(updates)
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a property; its projects cascade away with it.
func (r *propertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return domainErrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// CreateProject persists a new project under a property.
func (r *propertyRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	projectModel := fromProjectEntity(project)

	if err := r.db.WithContext(ctx).Create(projectModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}

		return domainErrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectModel.ID
	project.CreatedAt = projectModel.CreatedAt
	project.UpdatedAt = projectModel.UpdatedAt

	return nil
}

// FindProjectByID retrieves a project by its unique ID.
func (r *propertyRepository) FindProjectByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectModel model.ProjectModel
	err := r.db.WithContext(ctx).First(&projectModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to find project")
	}

	return toProjectEntity(&projectModel), nil
}

// FindProjectsByHomeowner retrieves all projects of a homeowner, newest first.
func (r *propertyRepository) FindProjectsByHomeowner(ctx context.Context, homeownerID uuid.UUID) ([]*entity.Project, error) {
	var projectModels []model.ProjectModel
	err := r.db.WithContext(ctx).
		Where("homeowner_id = ?", homeownerID).
		Order("created_at DESC").
		Find(&projectModels).Error
	if err != nil {
		return nil, domainErrors.NewDatabaseExecuteError(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, toProjectEntity(&projectModels[i]))
	}

	return projects, nil
}

func toPropertyEntity(m *model.PropertyModel) *entity.Property {
	return &entity.Property{
		ID:           m.ID,
		HomeownerID:  m.HomeownerID,
		Label:        m.Label,
		AddressLine:  m.AddressLine,
		City:         m.City,
		PostalCode:   m.PostalCode,
		PropertyType: m.PropertyType,
		Rooms:        m.Rooms,
		AreaSqm:      m.AreaSqm,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromPropertyEntity(e *entity.Property) *model.PropertyModel {
	return &model.PropertyModel{
		ID:           e.ID,
		HomeownerID:  e.HomeownerID,
		Label:        e.Label,
		AddressLine:  e.AddressLine,
		City:         e.City,
		PostalCode:   e.PostalCode,
		PropertyType: e.PropertyType,
		Rooms:        e.Rooms,
		AreaSqm:      e.AreaSqm,
	}
}

func toProjectEntity(m *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		HomeownerID: m.HomeownerID,
		Title:       m.Title,
		Description: m.Description,
		BudgetMin:   m.BudgetMin,
		BudgetMax:   m.BudgetMax,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProjectEntity(e *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:          e.ID,
		PropertyID:  e.PropertyID,
		HomeownerID: e.HomeownerID,
		Title:       e.Title,
		Description: e.Description,
		BudgetMin:   e.BudgetMin,
		BudgetMax:   e.BudgetMax,
	}
}
