package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"gorm.io/datatypes"
)

var (
	ErrInvalidStatus = errors.New("status must be draft, active or completed")
	ErrInvalidDate   = errors.New("dates must be ISO 8601")
)

type CampaignService struct {
	campaignRepo *repository.CampaignRepository
}

func NewCampaignService(campaignRepo *repository.CampaignRepository) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo}
}

func validStatus(status string) bool {
	switch status {
	case models.CampaignStatusDraft, models.CampaignStatusActive, models.CampaignStatusCompleted:
		return true
	}
	return false
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, ok := models.ParseDate(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return &t, nil
}

// CreateCampaign stores a campaign brief, with its generated content when given
func (s *CampaignService) CreateCampaign(req *models.CreateCampaignRequest) (*models.Campaign, error) {
	status := req.Status
	if status == "" {
		status = models.CampaignStatusDraft
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	start, err := optionalDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := optionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	budget, _ := req.Budget.Float()

	campaign := &models.Campaign{
		Name:             req.Name,
		Objective:        req.Objective,
		TargetAudience:   req.TargetAudience,
		Platforms:        pq.StringArray(req.Platforms),
		Budget:           budget,
		StartDate:        start,
		EndDate:          end,
		ContentStrategy:  req.ContentStrategy,
		PostingFrequency: req.PostingFrequency,
		CampaignData:     req.CampaignData,
		Status:           status,
	}
	if campaign.Platforms == nil {
		campaign.Platforms = pq.StringArray{}
	}
	if campaign.ContentStrategy == "" {
		campaign.ContentStrategy = string(models.StrategyOrganic)
	}
	if campaign.PostingFrequency == "" {
		campaign.PostingFrequency = string(models.FrequencyDaily)
	}
	if len(campaign.CampaignData) == 0 {
		campaign.CampaignData = datatypes.JSON("{}")
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

// ListCampaigns returns campaigns newest first. A non-positive limit returns all.
func (s *CampaignService) ListCampaigns(status string, limit, offset int) ([]*models.Campaign, int64, error) {
	campaigns, total, err := s.campaignRepo.List(status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, total, nil
}

func (s *CampaignService) GetCampaign(id string) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(id)
}

// UpdateCampaign applies a partial update and returns the stored row
func (s *CampaignService) UpdateCampaign(id string, updates map[string]interface{}) (*models.Campaign, error) {
	if status, ok := updates["status"]; ok {
		str, _ := status.(string)
		if !validStatus(str) {
			return nil, ErrInvalidStatus
		}
	}
	if err := s.campaignRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.campaignRepo.GetByID(id)
}

// SaveResult stores generated content on a campaign
func (s *CampaignService) SaveResult(id string, result *models.CampaignResult) (*models.Campaign, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode campaign result: %w", err)
	}
	if err := s.campaignRepo.Update(id, map[string]interface{}{"campaign_data": datatypes.JSON(data)}); err != nil {
		return nil, err
	}
	return s.campaignRepo.GetByID(id)
}

func (s *CampaignService) DeleteCampaign(id string) error {
	return s.campaignRepo.Delete(id)
}
