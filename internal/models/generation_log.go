package models

import (
	"time"

	"gorm.io/datatypes"
)

// Generation stages recorded for every LLM round trip
const (
	StageGenerationStarted = "generation_started"
	StageLLMCompleted      = "llm_completed"
	StageNormalized        = "normalized"
	StageGenerationFailed  = "generation_failed"
)

// Log status values
const (
	LogStatusInfo    = "info"
	LogStatusSuccess = "success"
	LogStatusWarning = "warning"
	LogStatusError   = "error"
)

// GenerationLog is a progress entry of a campaign generation (or an external worker step)
type GenerationLog struct {
	ID string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// Request correlation (X-Request-ID)
	RequestID string `json:"request_id" gorm:"type:varchar(64);index" example:"4f9c3c1e-6a51-4a8e-9d1b-2b8f1f0f9a10"`

	// Entity identification
	EntityType string `json:"entity_type" gorm:"type:varchar(50);not null;index" example:"generation"` // "generation" or "campaign"
	EntityID   string `json:"entity_id" gorm:"type:varchar(64);not null;index" example:"4f9c3c1e-6a51-4a8e-9d1b-2b8f1f0f9a10"`

	Stage   string `json:"stage" gorm:"type:varchar(50);not null;index" example:"llm_completed"`
	Status  string `json:"status" gorm:"type:varchar(20);not null;index" example:"success"`
	Message string `json:"message" gorm:"type:text;not null" example:"LLM reply received"`

	Metadata datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb" swaggertype:"object"` // {mode, provider, platforms, duration_ms, parse_error}

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for the GenerationLog model
func (GenerationLog) TableName() string {
	return "generation_logs"
}

// GenerationLogRequest is a log entry submitted over HTTP or RabbitMQ
type GenerationLogRequest struct {
	RequestID  string                 `json:"request_id,omitempty"`
	EntityType string                 `json:"entity_type" binding:"required" example:"campaign"`
	EntityID   string                 `json:"entity_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Stage      string                 `json:"stage" binding:"required" example:"published"`
	Status     string                 `json:"status" binding:"required" example:"success"`
	Message    string                 `json:"message" binding:"required" example:"Posts scheduled on Facebook"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
