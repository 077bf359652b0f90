package campaign

import (
	"errors"
	"testing"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
		summary string
	}{
		{name: "plain", text: `{"campaign_summary":"A"}`, summary: "A"},
		{name: "fenced", text: "```json\n{\"campaign_summary\":\"B\"}\n```", summary: "B"},
		{name: "bare fence", text: "```\n{\"campaign_summary\":\"C\"}\n```", summary: "C"},
		{name: "chatter around", text: "นี่คือผลลัพธ์ {\"campaign_summary\":\"D\"} ขอบคุณ", summary: "D"},
		{name: "no object", text: "ขออภัย ไม่สามารถสร้างได้", wantErr: true},
		{name: "broken", text: `{"campaign_summary": "E",`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ParseResponse(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.summary, raw["campaign_summary"])
		})
	}
}

func TestNormalizePreviewMalformedReply(t *testing.T) {
	req := &models.GenerateCampaignRequest{Mode: models.ModePreview}
	result, err := Normalize("this is not json at all", req, date(t, "2025-03-01"))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.ErrorIs(t, err, ErrNoJSONObject)

	require.NotNil(t, result)
	assert.Equal(t, "เกิดข้อผิดพลาดในการแปลง JSON - ใช้ข้อมูลตัวอย่าง", result.CampaignSummary)
	assert.NotEmpty(t, result.BigIdea)
	assert.Len(t, result.KeyMessages, 3)
	assert.NotEmpty(t, result.VisualDirection)
	assert.Nil(t, result.Posts)
}

func TestReconcileBackfillsPreview(t *testing.T) {
	raw := map[string]interface{}{
		"campaign_summary":  "  ",
		"key_messages":      "not a list",
		"audience_insights": "<p>คนทำงาน <b>25-34</b></p>",
	}
	result := Reconcile(raw, &models.GenerateCampaignRequest{}, date(t, "2025-03-01"))

	assert.Equal(t, fallbackSummary, result.CampaignSummary)
	assert.Equal(t, fallbackBigIdea, result.BigIdea)
	assert.Equal(t, fallbackKeyMessages, result.KeyMessages)
	assert.Equal(t, fallbackVisualDirection, result.VisualDirection)
	assert.Equal(t, "คนทำงาน 25-34", result.AudienceInsights)
}

func TestReconcileFullSevenDayDailyOrganic(t *testing.T) {
	req := &models.GenerateCampaignRequest{
		Mode:             models.ModeFull,
		Name:             "Healthy Meal Box",
		Platforms:        []string{"Facebook", "Instagram"},
		ContentStrategy:  models.StrategyOrganic,
		PostingFrequency: models.FrequencyDaily,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-08",
	}
	raw := map[string]interface{}{
		"posts": map[string]interface{}{
			"Facebook": []interface{}{
				map[string]interface{}{"caption": "วันแรก #HealthyMeal", "visual_prompt": "กล่องอาหาร"},
			},
			"TikTok": []interface{}{map[string]interface{}{"hook": "ไม่ได้เลือก"}},
		},
	}

	result := Reconcile(raw, req, date(t, "2025-03-01"))
	require.Len(t, result.Posts, 2)
	assert.NotContains(t, result.Posts, models.PlatformTikTok)

	for _, p := range []models.Platform{models.PlatformFacebook, models.PlatformInstagram} {
		posts := result.Posts[p]
		require.True(t, posts.IsList())
		require.Equal(t, 7, posts.Len(), p)
		for i := 0; i < 7; i++ {
			post := posts.At(i)
			require.NotNil(t, post.Day)
			assert.Equal(t, i+1, *post.Day)
			assert.Equal(t, models.PostTypeOrganic, post.PostType)
			assert.Equal(t, postTimes[i%4], post.Time)
		}
	}

	fb := result.Posts[models.PlatformFacebook]
	assert.Equal(t, "วันแรก #HealthyMeal", fb.At(0).Caption)
	assert.Equal(t, "โพสต์ Facebook วันที่ 2 สำหรับ Healthy Meal Box - เนื้อหาแตกต่างกันในแต่ละวัน", fb.At(1).Caption)
	assert.Equal(t, "โพสต์ Instagram วันที่ 3 #HealthyMealBox #Day3", result.Posts[models.PlatformInstagram].At(2).Caption)
}

func TestReconcileFullMalformedPlatformEntries(t *testing.T) {
	req := &models.GenerateCampaignRequest{
		Mode:             models.ModeFull,
		Platforms:        []string{"TikTok", "YouTube", "Line OA", "tiktok", "MySpace"},
		ContentStrategy:  models.StrategyMixed,
		PostingFrequency: models.FrequencyWeekly,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-15",
	}
	raw := map[string]interface{}{
		"posts": map[string]interface{}{
			"TikTok":  map[string]interface{}{"hook": "object, not array"},
			"YouTube": []interface{}{},
			"Line OA": []interface{}{"string entry", map[string]interface{}{"message": "สวัสดี", "cta": ""}},
		},
	}

	result := Reconcile(raw, req, date(t, "2025-03-01"))
	require.Len(t, result.Posts, 3)

	for _, p := range []models.Platform{models.PlatformTikTok, models.PlatformYouTube, models.PlatformLineOA} {
		posts := result.Posts[p]
		require.Equal(t, 2, posts.Len(), p)
		assert.Equal(t, models.PostTypeOrganic, posts.At(0).PostType)
		assert.Equal(t, models.PostTypeBoosted, posts.At(1).PostType)
	}

	tiktok := result.Posts[models.PlatformTikTok].At(0)
	assert.Equal(t, "Hook TikTok ที่ดึงดูดใจวันที่ 1", tiktok.Hook)
	assert.Equal(t, "สคริปต์ TikTok วันที่ 1 เกี่ยวกับ แคมเปญ - มุมมองใหม่ในแต่ละวัน", tiktok.Script)

	line := result.Posts[models.PlatformLineOA]
	assert.Equal(t, "ข้อความ Line OA วันที่ 1 สำหรับ แคมเปญ - เนื้อหาใหม่ทุกวัน", line.At(0).Message)
	assert.Equal(t, "สวัสดี", line.At(1).Message)
	assert.Equal(t, "เรียนรู้เพิ่มเติมวันที่ 2", line.At(1).CTA)
}

func TestNormalizeFullParseFailureStillReconciles(t *testing.T) {
	req := &models.GenerateCampaignRequest{
		Mode:            models.ModeFull,
		Platforms:       []string{"YouTube"},
		ContentStrategy: models.StrategyPaid,
		StartDate:       "2025-03-01",
		EndDate:         "2025-03-04",
	}
	result, err := Normalize("{broken", req, date(t, "2025-03-01"))
	require.Error(t, err)

	posts := result.Posts[models.PlatformYouTube]
	require.Equal(t, 3, posts.Len())
	assert.Equal(t, models.PostTypeAd, posts.At(2).PostType)
	assert.Equal(t, "วิดีโอ YouTube วันที่ 3: แคมเปญ - เนื้อหาพิเศษ", posts.At(2).Title)
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "สวัสดี ครับ", SanitizeText("<p>สวัสดี <b>ครับ</b></p>"))
	assert.Equal(t, "ราคา 5 < 10", SanitizeText("  ราคา 5 < 10 "))
	assert.Equal(t, "", SanitizeText("<br/>"))
}
