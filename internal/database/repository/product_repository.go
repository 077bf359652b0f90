package repository

import (
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"gorm.io/gorm"
)

var productColumns = map[string]bool{
	"organization_id": true,
	"name":            true,
	"description":     true,
	"price":           true,
	"category":        true,
	"target_audience": true,
	"features":        true,
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns products ordered by name, optionally for one organization
func (r *ProductRepository) GetAll(organizationID string) ([]*models.Product, error) {
	var products []*models.Product
	query := r.db.Order("name ASC")
	if organizationID != "" {
		query = query.Where("organization_id = ?", organizationID)
	}
	err := query.Find(&products).Error
	return products, err
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &product, nil
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return mapError(r.db.Create(product).Error)
}

// Update applies a partial update
func (r *ProductRepository) Update(id string, updates map[string]interface{}) error {
	return patchRow(r.db, &models.Product{}, id, updates, productColumns)
}

// Delete deletes a product
func (r *ProductRepository) Delete(id string) error {
	result := r.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
