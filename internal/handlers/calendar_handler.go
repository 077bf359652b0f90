package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
)

// CalendarHandler places generated posts on campaign days and edits them
type CalendarHandler struct {
	now func() time.Time
}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{now: time.Now}
}

// GetCalendar godoc
// @Summary Materialize the post calendar
// @Description Flattens the per-platform posts of a result into calendar entries placed on the campaign days
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body models.CalendarRequest true "Result and brief"
// @Success 200 {object} models.CalendarResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/calendar [post]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	var req models.CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	days := campaign.FormDays(req.FormData, h.now())
	end := days[len(days)-1]
	posts := campaign.MaterializePosts(req.Result, days[0], &end)
	if posts == nil {
		posts = []models.PostItem{}
	}

	c.JSON(http.StatusOK, models.CalendarResponse{
		Days:  campaign.ISODates(days),
		Posts: posts,
	})
}

// UpdatePost godoc
// @Summary Edit one calendar post
// @Description Writes the edited text back into the platform-native shape of the addressed post and returns the updated result
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body models.UpdatePostRequest true "Result and edit"
// @Success 200 {object} models.CampaignResult
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/calendar/posts [put]
func (h *CalendarHandler) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := campaign.ApplyPostEdit(req.Result, req.Edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to apply edit", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req.Result)
}

// GetAdSchedule godoc
// @Summary Allocate the ad budget of a brief
// @Description Splits the budget evenly across the channels and days. Organic briefs get an empty schedule.
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body models.AdScheduleRequest true "Brief"
// @Success 200 {array} models.AdScheduleItem
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/ad-schedule [post]
func (h *CalendarHandler) GetAdSchedule(c *gin.Context) {
	var req models.AdScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	items, err := campaign.AllocateForForm(&req.FormData, h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.AdScheduleItem{}
	}
	c.JSON(http.StatusOK, items)
}
