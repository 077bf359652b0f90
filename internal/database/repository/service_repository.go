package repository

import (
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"gorm.io/gorm"
)

var serviceColumns = map[string]bool{
	"organization_id": true,
	"name":            true,
	"description":     true,
	"price":           true,
	"duration":        true,
	"target_audience": true,
	"features":        true,
}

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// GetAll returns services ordered by name, optionally for one organization
func (r *ServiceRepository) GetAll(organizationID string) ([]*models.Service, error) {
	var services []*models.Service
	query := r.db.Order("name ASC")
	if organizationID != "" {
		query = query.Where("organization_id = ?", organizationID)
	}
	err := query.Find(&services).Error
	return services, err
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &service, nil
}

// Create creates a new service
func (r *ServiceRepository) Create(service *models.Service) error {
	return mapError(r.db.Create(service).Error)
}

// Update applies a partial update
func (r *ServiceRepository) Update(id string, updates map[string]interface{}) error {
	return patchRow(r.db, &models.Service{}, id, updates, serviceColumns)
}

// Delete deletes a service
func (r *ServiceRepository) Delete(id string) error {
	result := r.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
