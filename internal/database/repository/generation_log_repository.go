package repository

import (
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"gorm.io/gorm"
)

type GenerationLogRepository struct {
	db *gorm.DB
}

func NewGenerationLogRepository(db *gorm.DB) *GenerationLogRepository {
	return &GenerationLogRepository{db: db}
}

// Create creates a new generation log
func (r *GenerationLogRepository) Create(log *models.GenerationLog) error {
	return r.db.Create(log).Error
}

// GetByEntity retrieves logs for a specific entity, newest first
func (r *GenerationLogRepository) GetByEntity(entityType, entityID string, limit, offset int) ([]*models.GenerationLog, error) {
	var logs []*models.GenerationLog
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

// GetByRequestID retrieves every log written while serving one HTTP request
func (r *GenerationLogRepository) GetByRequestID(requestID string) ([]*models.GenerationLog, error) {
	var logs []*models.GenerationLog
	err := r.db.Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

// CountByEntity counts logs for a specific entity
func (r *GenerationLogRepository) CountByEntity(entityType, entityID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.GenerationLog{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Count(&count).Error
	return count, err
}

// DeleteOldLogs deletes logs older than the given number of days
func (r *GenerationLogRepository) DeleteOldLogs(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)
	result := r.db.Where("created_at < ?", cutoffDate).Delete(&models.GenerationLog{})
	return result.RowsAffected, result.Error
}
