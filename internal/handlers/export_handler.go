package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/excel"
	"github.com/sirupsen/logrus"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Uploader stores an export and returns a download URL
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// ExportHandler renders campaign exports as downloads or uploads them to object storage
type ExportHandler struct {
	excelService *excel.Service
	uploader     Uploader
	now          func() time.Time
}

// NewExportHandler builds the handler. uploader may be nil when object storage is not configured.
func NewExportHandler(uploader Uploader) *ExportHandler {
	return &ExportHandler{
		excelService: excel.NewExcelService(),
		uploader:     uploader,
		now:          time.Now,
	}
}

func (h *ExportHandler) bind(c *gin.Context) (*models.ExportRequest, bool) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return nil, false
	}
	if upload, _ := strconv.ParseBool(c.Query("upload")); upload && h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Object storage is not configured"})
		return nil, false
	}
	return &req, true
}

// deliver sends the file as an attachment, or uploads it when ?upload=true
func (h *ExportHandler) deliver(c *gin.Context, filename, contentType string, data []byte) {
	if upload, _ := strconv.ParseBool(c.Query("upload")); upload {
		url, err := h.uploader.Upload(c.Request.Context(), filename, contentType, data)
		if err != nil {
			logrus.WithError(err).WithField("filename", filename).Error("Failed to upload export")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload export", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.ExportUploadResponse{Filename: filename, URL: url})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// ExportJSON godoc
// @Summary Export a campaign as JSON
// @Description Document with campaign, generatedAt, formData and exportVersion. With upload=true the file is stored and a presigned URL returned.
// @Tags exports
// @Accept json
// @Produce json
// @Param request body models.ExportRequest true "Campaign and brief"
// @Param upload query bool false "Store in object storage and return a download URL"
// @Success 200 {object} campaign.ExportDocument
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/exports/json [post]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	now := h.now()
	data, err := campaign.ExportJSON(req.Campaign, req.FormData, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to export campaign", "details": err.Error()})
		return
	}
	h.deliver(c, campaign.ExportFilename("json", now), contentTypeJSON, data)
}

// ExportText godoc
// @Summary Export a campaign as plain text
// @Tags exports
// @Accept json
// @Produce plain
// @Param request body models.ExportRequest true "Campaign"
// @Param upload query bool false "Store in object storage and return a download URL"
// @Success 200 {string} string
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/exports/text [post]
func (h *ExportHandler) ExportText(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	now := h.now()
	text, err := campaign.ExportText(req.Campaign, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to export campaign", "details": err.Error()})
		return
	}
	h.deliver(c, campaign.ExportFilename("txt", now), contentTypeText, []byte(text))
}

// ExportXLSX godoc
// @Summary Export the post calendar as an Excel workbook
// @Description Calendar sheet with one row per post and an Ad Schedule sheet
// @Tags exports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body models.ExportRequest true "Campaign and brief"
// @Param upload query bool false "Store in object storage and return a download URL"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/exports/xlsx [post]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	now := h.now()
	days := campaign.FormDays(req.FormData, now)
	end := days[len(days)-1]
	posts := campaign.MaterializePosts(req.Campaign, days[0], &end)

	buf, err := h.excelService.BuildCalendar(posts, days, req.Campaign.AdSchedule)
	if err != nil {
		logrus.WithError(err).Error("Failed to build calendar workbook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook", "details": err.Error()})
		return
	}
	h.deliver(c, campaign.ExportFilename("xlsx", now), contentTypeXLSX, buf.Bytes())
}
