package repository

import (
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"gorm.io/gorm"
)

var organizationColumns = map[string]bool{
	"name":        true,
	"industry":    true,
	"description": true,
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetAll returns every organization ordered by name
func (r *OrganizationRepository) GetAll() ([]*models.Organization, error) {
	var orgs []*models.Organization
	err := r.db.Order("name ASC").Find(&orgs).Error
	return orgs, err
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &org, nil
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return mapError(r.db.Create(org).Error)
}

// Update applies a partial update
func (r *OrganizationRepository) Update(id string, updates map[string]interface{}) error {
	return patchRow(r.db, &models.Organization{}, id, updates, organizationColumns)
}

// Delete deletes an organization together with its products and services
func (r *OrganizationRepository) Delete(id string) error {
	result := r.db.Delete(&models.Organization{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
