package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarRouter() *gin.Engine {
	h := NewCalendarHandler()
	r := gin.New()
	r.POST("/calendar", h.GetCalendar)
	r.PUT("/calendar/posts", h.UpdatePost)
	r.POST("/ad-schedule", h.GetAdSchedule)
	return r
}

func TestGetCalendar(t *testing.T) {
	body := `{"result": ` + sampleResult + `, "formData": {"startDate": "2025-03-01", "endDate": "2025-03-03"}}`
	w := performRequest(calendarRouter(), http.MethodPost, "/calendar", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.CalendarResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, resp.Days)
	require.Len(t, resp.Posts, 2)

	assert.Equal(t, 0, resp.Posts[0].Day)
	assert.Equal(t, "Hello #promo", resp.Posts[0].Content)
	assert.Equal(t, "10:00", resp.Posts[0].Time)
	assert.Equal(t, 2, resp.Posts[1].Day)
	assert.Equal(t, models.PostType("boosted"), resp.Posts[1].PostType)
}

func TestGetCalendarRequiresResult(t *testing.T) {
	w := performRequest(calendarRouter(), http.MethodPost, "/calendar", `{"formData": {}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePost(t *testing.T) {
	body := `{"result": ` + sampleResult + `, "edit": {"platform": "Facebook", "postIndex": 1, "content": "Edited caption", "time": "09:30"}}`
	w := performRequest(calendarRouter(), http.MethodPut, "/calendar/posts", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Posts map[string][]map[string]interface{} `json:"posts"`
	}
	decodeBody(t, w, &resp)
	fb := resp.Posts["Facebook"]
	require.Len(t, fb, 2)
	assert.Equal(t, "Hello #promo", fb[0]["caption"])
	assert.Equal(t, "Edited caption", fb[1]["caption"])
	assert.Equal(t, "09:30", fb[1]["time"])
	assert.Equal(t, "boosted", fb[1]["postType"])
}

func TestUpdatePostUnknownIndex(t *testing.T) {
	body := `{"result": ` + sampleResult + `, "edit": {"platform": "Facebook", "postIndex": 5, "content": "x"}}`
	w := performRequest(calendarRouter(), http.MethodPut, "/calendar/posts", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAdSchedule(t *testing.T) {
	tests := []struct {
		name     string
		formData string
		items    int
	}{
		{
			name:     "paid splits budget per platform",
			formData: `{"budget": "100000", "channels": ["Facebook", "TikTok"], "contentStrategy": "paid", "startDate": "2025-03-01", "endDate": "2025-03-10"}`,
			items:    2,
		},
		{
			name:     "organic has no schedule",
			formData: `{"budget": "100000", "channels": ["Facebook"], "contentStrategy": "organic", "startDate": "2025-03-01"}`,
			items:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(calendarRouter(), http.MethodPost, "/ad-schedule", `{"formData": `+tt.formData+`}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var items []models.AdScheduleItem
			decodeBody(t, w, &items)
			require.Len(t, items, tt.items)
			for _, item := range items {
				assert.Equal(t, 50000.0, item.TotalBudget)
				assert.Equal(t, 5000.0, item.DailyBudget)
				assert.Len(t, item.RunDates, 10)
			}
		})
	}
}

func TestGetAdScheduleInvalidBudget(t *testing.T) {
	for _, budget := range []string{"-1", "NaN", "Inf", "+Inf"} {
		t.Run(budget, func(t *testing.T) {
			body := `{"formData": {"budget": "custom", "customBudget": "` + budget + `", "channels": ["Facebook"], "contentStrategy": "paid"}}`
			w := performRequest(calendarRouter(), http.MethodPost, "/ad-schedule", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
