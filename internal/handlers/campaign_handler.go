package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"github.com/onegreenvn/campaign-generator-backend/internal/utils"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	return &CampaignHandler{
		campaignService: services.NewCampaignService(repository.NewCampaignRepository(db)),
	}
}

// CreateCampaign godoc
// @Summary Create a new campaign
// @Description Save a campaign brief, optionally with its generated content in campaign_data
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) || errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondRepoError(c, err, "Campaign")
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// ListCampaigns godoc
// @Summary List campaigns
// @Description List campaigns newest first. Without page_size every campaign is returned; X-Total-Count carries the total.
// @Tags campaigns
// @Produce json
// @Param status query string false "Filter by status" Enums(draft, active, completed)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} models.Campaign
// @Failure 500 {object} map[string]interface{}
// @Router /api/campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	page := utils.ParsePage(c.Query("page"), c.Query("page_size"))

	campaigns, total, err := h.campaignService.ListCampaigns(c.Query("status"), page.Size, page.Offset())
	if err != nil {
		respondRepoError(c, err, "Campaign")
		return
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.Header("X-Total-Pages", strconv.Itoa(page.TotalPages(total)))
	c.JSON(http.StatusOK, campaigns)
}

// GetCampaign godoc
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} map[string]interface{}
// @Router /api/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaign(c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaign godoc
// @Summary Update campaign
// @Description Partial update of whitelisted columns; updated_at is refreshed
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body map[string]interface{} true "Fields to update"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/campaigns/{id} [patch]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondRepoError(c, err, "Campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// SaveCampaignResult godoc
// @Summary Store generated content on a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.CampaignResult true "Generated campaign"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/campaigns/{id}/result [put]
func (h *CampaignHandler) SaveCampaignResult(c *gin.Context) {
	var result models.CampaignResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	campaign, err := h.campaignService.SaveResult(c.Param("id"), &result)
	if err != nil {
		respondRepoError(c, err, "Campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign godoc
// @Summary Delete campaign
// @Tags campaigns
// @Param id path string true "Campaign ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	if err := h.campaignService.DeleteCampaign(c.Param("id")); err != nil {
		respondRepoError(c, err, "Campaign")
		return
	}
	c.Status(http.StatusNoContent)
}
