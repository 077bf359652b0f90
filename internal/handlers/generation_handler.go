package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// CampaignGenerator runs one generation request
type CampaignGenerator interface {
	Generate(ctx context.Context, requestID string, req *models.GenerateCampaignRequest) (*services.Generation, error)
}

type GenerationHandler struct {
	generator CampaignGenerator
}

func NewGenerationHandler(generator CampaignGenerator) *GenerationHandler {
	return &GenerationHandler{generator: generator}
}

// GenerateCampaign godoc
// @Summary Generate a campaign
// @Description Preview mode returns the campaign summary, big idea, key messages and visual direction.
// @Description Full mode adds posts per platform and, for paid or mixed strategies, an ad schedule.
// @Description Malformed LLM replies are repaired into fallback content instead of failing.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body models.GenerateCampaignRequest true "Generation request"
// @Success 200 {object} models.CampaignResult
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/generate-campaign [post]
func (h *GenerationHandler) GenerateCampaign(c *gin.Context) {
	var req models.GenerateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	requestID := c.GetString("request_id")
	gen, err := h.generator.Generate(c.Request.Context(), requestID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMode) || errors.Is(err, services.ErrNoPlatforms) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).WithField("request_id", requestID).Error("Campaign generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("X-Generation-ID", gen.ID)
	c.JSON(http.StatusOK, gen.Body())
}
