package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter() *gin.Engine {
	h := NewSessionHandler(services.NewSessionService(services.NewMemorySessionStore(time.Hour)))
	r := gin.New()
	s := r.Group("/sessions")
	s.POST("", h.CreateSession)
	s.GET("/:id", h.GetSession)
	s.PUT("/:id/form", h.SetFormData)
	s.PUT("/:id/preview", h.SetPreview)
	s.PUT("/:id/campaign", h.SetFullCampaign)
	s.POST("/:id/versions", h.SaveVersion)
	s.POST("/:id/versions/:versionId/switch", h.SwitchVersion)
	s.POST("/:id/duplicate", h.Duplicate)
	s.POST("/:id/undo", h.Undo)
	s.POST("/:id/reset", h.Reset)
	s.DELETE("/:id", h.DeleteSession)
	return r
}

func TestSessionLifecycle(t *testing.T) {
	r := sessionRouter()

	w := performRequest(r, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var session models.SessionResponse
	decodeBody(t, w, &session)
	require.NotEmpty(t, session.ID)
	base := "/sessions/" + session.ID

	w = performRequest(r, http.MethodPut, base+"/form", `{"industry": "Technology", "budget": "100000", "channels": ["Facebook"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeBody(t, w, &session)
	assert.Equal(t, "Technology", session.FormData.Industry)
	assert.False(t, session.CanUndo)

	w = performRequest(r, http.MethodPut, base+"/preview", `{"campaign_summary": "s", "big_idea": "idea", "key_messages": ["a"], "visual_direction": "v"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &session)
	assert.Equal(t, "idea", session.Preview.BigIdea)
	assert.True(t, session.CanUndo)

	w = performRequest(r, http.MethodPost, base+"/versions", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeBody(t, w, &session)
	require.Len(t, session.Versions, 1)
	assert.Equal(t, "Version 1", session.Versions[0].Label)
	assert.Equal(t, session.Versions[0].ID, session.CurrentVersionID)

	w = performRequest(r, http.MethodPost, base+"/duplicate", "")
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &session)
	require.Len(t, session.Versions, 2)
	assert.Equal(t, "Copy - Version 2", session.Versions[1].Label)

	w = performRequest(r, http.MethodPost, base+"/undo", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &session)
	assert.Nil(t, session.Preview)
	assert.Equal(t, "Technology", session.FormData.Industry)

	w = performRequest(r, http.MethodPost, base+"/undo", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(r, http.MethodPost, base+"/versions/"+session.Versions[0].ID+"/switch", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &session)
	assert.Equal(t, "idea", session.Preview.BigIdea)

	w = performRequest(r, http.MethodPost, base+"/versions/v_missing/switch", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(r, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &session)
	assert.Empty(t, session.Versions)
	assert.Nil(t, session.FormData)

	w = performRequest(r, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(r, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionSaveVersionWithLabel(t *testing.T) {
	r := sessionRouter()
	w := performRequest(r, http.MethodPost, "/sessions", "")
	var session models.SessionResponse
	decodeBody(t, w, &session)

	w = performRequest(r, http.MethodPost, "/sessions/"+session.ID+"/versions", `{"label": "Before price change"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &session)
	assert.Equal(t, "Before price change", session.Versions[0].Label)
}

func TestSessionNotFound(t *testing.T) {
	r := sessionRouter()
	for _, path := range []string{"/sessions/missing/undo", "/sessions/missing/reset", "/sessions/missing/duplicate"} {
		w := performRequest(r, http.MethodPost, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
	w := performRequest(r, http.MethodPut, "/sessions/missing/form", `{"industry": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
