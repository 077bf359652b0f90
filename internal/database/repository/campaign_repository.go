package repository

import (
	"github.com/google/uuid"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"

	"gorm.io/gorm"
)

var campaignColumns = map[string]bool{
	"name":              true,
	"objective":         true,
	"target_audience":   true,
	"platforms":         true,
	"budget":            true,
	"start_date":        true,
	"end_date":          true,
	"content_strategy":  true,
	"posting_frequency": true,
	"campaign_data":     true,
	"status":            true,
}

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// campaign ids are uuids; anything else cannot match a row
func validCampaignID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return mapError(r.db.Create(campaign).Error)
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	if !validCampaignID(id) {
		return nil, ErrNotFound
	}
	var campaign models.Campaign
	if err := r.db.First(&campaign, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &campaign, nil
}

// List returns campaigns newest first. An empty status matches every campaign;
// a non-positive limit returns all rows.
func (r *CampaignRepository) List(status string, limit, offset int) ([]*models.Campaign, int64, error) {
	query := r.db.Model(&models.Campaign{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []*models.Campaign
	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// Update applies a partial update to the whitelisted columns
func (r *CampaignRepository) Update(id string, updates map[string]interface{}) error {
	if !validCampaignID(id) {
		return ErrNotFound
	}
	return patchRow(r.db, &models.Campaign{}, id, updates, campaignColumns)
}

// Delete deletes a campaign
func (r *CampaignRepository) Delete(id string) error {
	if !validCampaignID(id) {
		return ErrNotFound
	}
	result := r.db.Delete(&models.Campaign{}, "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
