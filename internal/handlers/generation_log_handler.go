package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"github.com/sirupsen/logrus"
)

type GenerationLogHandler struct {
	logService *services.GenerationLogService
	sseHub     *services.SSEHub
}

func NewGenerationLogHandler(logService *services.GenerationLogService, sseHub *services.SSEHub) *GenerationLogHandler {
	return &GenerationLogHandler{
		logService: logService,
		sseHub:     sseHub,
	}
}

// CreateLog godoc
// @Summary Create a generation log
// @Description Record a progress entry. External workers can also publish to the campaign_generation_logs queue.
// @Tags generation-logs
// @Accept json
// @Produce json
// @Param request body models.GenerationLogRequest true "Log entry"
// @Success 201 {object} models.GenerationLog
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/generation-logs [post]
func (h *GenerationLogHandler) CreateLog(c *gin.Context) {
	var req models.GenerationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if req.RequestID == "" {
		req.RequestID = c.GetString("request_id")
	}

	log, err := h.logService.CreateLog(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLog) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Failed to create log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create log", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// GetLogsByEntity godoc
// @Summary Get logs of an entity
// @Description entity_type "request" lists every log of one X-Request-ID
// @Tags generation-logs
// @Produce json
// @Param entity_type path string true "Entity type" Enums(generation, campaign, request)
// @Param entity_id path string true "Entity ID"
// @Param limit query int false "Limit" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.GenerationLog
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/generation-logs/{entity_type}/{entity_id} [get]
func (h *GenerationLogHandler) GetLogsByEntity(c *gin.Context) {
	entityType := c.Param("entity_type")
	entityID := c.Param("entity_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := h.logService.GetLogsByEntity(entityType, entityID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get logs", "details": err.Error()})
		return
	}
	if logs == nil {
		logs = []*models.GenerationLog{}
	}

	total, err := h.logService.CountLogs(entityType, entityID)
	if err == nil {
		c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	}
	c.JSON(http.StatusOK, logs)
}

// StreamLogsSSE godoc
// @Summary Stream generation logs via Server-Sent Events
// @Description Replays stored logs, then streams new ones as "log" events
// @Tags generation-logs
// @Produce text/event-stream
// @Param entity_type path string true "Entity type" Enums(generation, campaign, request)
// @Param entity_id path string true "Entity ID"
// @Success 200 "SSE stream"
// @Router /api/v1/generation-logs/{entity_type}/{entity_id}/stream [get]
func (h *GenerationLogHandler) StreamLogsSSE(c *gin.Context) {
	entityType := c.Param("entity_type")
	entityID := c.Param("entity_id")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	clientChan := h.sseHub.RegisterClient(entityType, entityID)
	defer h.sseHub.UnregisterClient(entityType, entityID, clientChan)

	c.SSEvent("connected", gin.H{
		"entity_type": entityType,
		"entity_id":   entityID,
		"message":     "Connected to log stream",
	})
	c.Writer.Flush()

	existing, err := h.logService.GetLogsByEntity(entityType, entityID, 100, 0)
	if err == nil {
		for _, log := range existing {
			data, err := json.Marshal(log)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(c.Writer, "event: log\ndata: %s\n\n", data); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Debugf("SSE client disconnected: %s/%s", entityType, entityID)
			return
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}
