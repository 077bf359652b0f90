package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Campaign status values
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

// Campaign is a saved campaign brief together with its generated content
type Campaign struct {
	ID             string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name           string `json:"name" gorm:"type:varchar(255);not null" example:"Smart Analytics Launch"`
	Objective      string `json:"objective" gorm:"type:varchar(255)" example:"Brand Awareness"`
	TargetAudience string `json:"target_audience" gorm:"type:varchar(255)" example:"SME Business Owners"`

	Platforms pq.StringArray `json:"platforms" gorm:"type:text[]" swaggertype:"array,string"`
	Budget    float64        `json:"budget" gorm:"type:decimal(14,2)" example:"100000"`

	// Scheduling
	StartDate *time.Time `json:"start_date" gorm:"type:date;index"`
	EndDate   *time.Time `json:"end_date" gorm:"type:date;index"`

	ContentStrategy  string `json:"content_strategy" gorm:"type:varchar(20);default:'organic'" example:"organic"`
	PostingFrequency string `json:"posting_frequency" gorm:"type:varchar(20);default:'daily'" example:"daily"`

	// Generated preview/result and the brief, as produced by the generator
	CampaignData datatypes.JSON `json:"campaign_data" gorm:"type:jsonb" swaggertype:"object"`

	Status string `json:"status" gorm:"type:varchar(20);not null;default:'draft';index" example:"draft"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// CreateCampaignRequest represents the request to create a new campaign
type CreateCampaignRequest struct {
	Name             string         `json:"name" binding:"required" example:"Smart Analytics Launch"`
	Objective        string         `json:"objective" example:"Brand Awareness"`
	TargetAudience   string         `json:"target_audience" example:"SME Business Owners"`
	Platforms        []string       `json:"platforms" example:"Facebook,TikTok"`
	Budget           FlexString     `json:"budget" swaggertype:"string" example:"100000"`
	StartDate        string         `json:"start_date" example:"2025-03-01"`
	EndDate          string         `json:"end_date" example:"2025-03-10"`
	ContentStrategy  string         `json:"content_strategy" example:"paid"`
	PostingFrequency string         `json:"posting_frequency" example:"daily"`
	CampaignData     datatypes.JSON `json:"campaign_data" swaggertype:"object"`
	Status           string         `json:"status" example:"draft"`
}
