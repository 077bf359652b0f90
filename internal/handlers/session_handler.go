package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
	"github.com/sirupsen/logrus"
)

// SessionHandler exposes campaign sessions with versions and undo
type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, campaign.ErrVersionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Version not found", "details": err.Error()})
	case errors.Is(err, services.ErrNothingToUndo):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithField("session_id", c.Param("id")).Error("Session store error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session", "details": err.Error()})
	}
}

func (h *SessionHandler) update(c *gin.Context, status int, fn func(*campaign.Session) error) {
	session, err := h.sessionService.Update(c.Request.Context(), c.Param("id"), fn)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(status, session.Response())
}

// CreateSession godoc
// @Summary Start a campaign session
// @Tags sessions
// @Produce json
// @Success 201 {object} models.SessionResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.sessionService.Create(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session.Response())
}

// GetSession godoc
// @Summary Get a campaign session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Response())
}

// SetFormData godoc
// @Summary Replace the campaign brief
// @Description The previous state is auto-saved for undo
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.CampaignFormData true "Brief"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/form [put]
func (h *SessionHandler) SetFormData(c *gin.Context) {
	var form models.CampaignFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	h.update(c, http.StatusOK, func(s *campaign.Session) error {
		s.SetFormData(&form)
		return nil
	})
}

// SetPreview godoc
// @Summary Replace the campaign preview
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.CampaignPreview true "Preview"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/preview [put]
func (h *SessionHandler) SetPreview(c *gin.Context) {
	var preview models.CampaignPreview
	if err := c.ShouldBindJSON(&preview); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	h.update(c, http.StatusOK, func(s *campaign.Session) error {
		s.SetPreview(&preview)
		return nil
	})
}

// SetFullCampaign godoc
// @Summary Replace the full campaign
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.CampaignResult true "Full campaign"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/campaign [put]
func (h *SessionHandler) SetFullCampaign(c *gin.Context) {
	var result models.CampaignResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	h.update(c, http.StatusOK, func(s *campaign.Session) error {
		s.SetFullCampaign(&result)
		return nil
	})
}

// SaveVersion godoc
// @Summary Save the current state as a version
// @Description An empty label becomes "Version N"
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.SaveVersionRequest false "Label"
// @Success 201 {object} models.SessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/versions [post]
func (h *SessionHandler) SaveVersion(c *gin.Context) {
	var req models.SaveVersionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
			return
		}
	}
	h.update(c, http.StatusCreated, func(s *campaign.Session) error {
		s.SaveVersion(req.Label)
		return nil
	})
}

// SwitchVersion godoc
// @Summary Restore a saved version
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param versionId path string true "Version ID"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/versions/{versionId}/switch [post]
func (h *SessionHandler) SwitchVersion(c *gin.Context) {
	versionID := c.Param("versionId")
	h.update(c, http.StatusOK, func(s *campaign.Session) error {
		return s.SwitchToVersion(versionID)
	})
}

// Duplicate godoc
// @Summary Copy the current state into a new version
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} models.SessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/duplicate [post]
func (h *SessionHandler) Duplicate(c *gin.Context) {
	h.update(c, http.StatusCreated, func(s *campaign.Session) error {
		s.Duplicate()
		return nil
	})
}

// Undo godoc
// @Summary Undo the last change
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/undo [post]
func (h *SessionHandler) Undo(c *gin.Context) {
	session, err := h.sessionService.Undo(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.Response())
}

// Reset godoc
// @Summary Clear the session content and history
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	h.update(c, http.StatusOK, func(s *campaign.Session) error {
		s.Reset()
		return nil
	})
}

// DeleteSession godoc
// @Summary Delete a campaign session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
