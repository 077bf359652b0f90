package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCrudHandlersRejectInvalidBodies(t *testing.T) {
	campaigns := NewCampaignHandler(nil)
	catalog := NewCatalogHandler(nil)

	r := gin.New()
	r.POST("/api/campaigns", campaigns.CreateCampaign)
	r.PATCH("/api/campaigns/:id", campaigns.UpdateCampaign)
	r.PUT("/api/campaigns/:id/result", campaigns.SaveCampaignResult)
	r.POST("/api/organizations", catalog.CreateOrganization)
	r.PATCH("/api/products/:id", catalog.UpdateProduct)
	r.POST("/api/services", catalog.CreateService)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "campaign malformed json", method: http.MethodPost, path: "/api/campaigns", body: `{"name":`},
		{name: "campaign bad status", method: http.MethodPost, path: "/api/campaigns", body: `{"name": "Launch", "status": "archived"}`},
		{name: "campaign bad date", method: http.MethodPost, path: "/api/campaigns", body: `{"name": "Launch", "start_date": "next week"}`},
		{name: "campaign empty patch", method: http.MethodPatch, path: "/api/campaigns/c1", body: `{}`},
		{name: "campaign result malformed", method: http.MethodPut, path: "/api/campaigns/c1/result", body: `[]`},
		{name: "organization missing name", method: http.MethodPost, path: "/api/organizations", body: `{"industry": "Tech"}`},
		{name: "product patch not an object", method: http.MethodPatch, path: "/api/products/p1", body: `"name"`},
		{name: "service missing fields", method: http.MethodPost, path: "/api/services", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestCampaignHandlersNonUUIDIDIsNotFound(t *testing.T) {
	campaigns := NewCampaignHandler(nil)

	r := gin.New()
	r.GET("/api/campaigns/:id", campaigns.GetCampaign)
	r.PATCH("/api/campaigns/:id", campaigns.UpdateCampaign)
	r.PUT("/api/campaigns/:id/result", campaigns.SaveCampaignResult)
	r.DELETE("/api/campaigns/:id", campaigns.DeleteCampaign)

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/campaigns/not-a-uuid", ""},
		{http.MethodPatch, "/api/campaigns/123", `{"name": "Renamed"}`},
		{http.MethodPut, "/api/campaigns/abc/result", `{"campaign_summary": "S"}`},
		{http.MethodDelete, "/api/campaigns/abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := performRequest(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), "Campaign not found")
		})
	}
}
