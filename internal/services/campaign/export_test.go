package campaign

import (
	"strings"
	"testing"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.CampaignResult {
	return &models.CampaignResult{
		CampaignPreview: models.CampaignPreview{
			CampaignSummary: "แคมเปญเปิดตัว",
			BigIdea:         "ทำงานน้อยลง ได้ผลมากขึ้น",
			KeyMessages:     []string{"เร็ว", "ง่าย"},
			VisualDirection: "โทนสีฟ้า",
		},
		Posts: map[models.Platform]*models.PlatformPosts{
			models.PlatformFacebook: models.NewPostList(
				models.PostItemData{Day: intPtr(1), Time: "10:00", PostType: models.PostTypeAd, Caption: "วันแรก <3 & #Launch", VisualPrompt: "แดชบอร์ด"},
				models.PostItemData{Day: intPtr(2), Time: "14:00", PostType: models.PostTypeAd, Caption: "วันสอง", VisualPrompt: "กราฟ"},
			),
			models.PlatformTikTok: models.NewSinglePost(models.PostItemData{Hook: "หยุด!", Script: "ดูนี่"}),
		},
		AdSchedule: []models.AdScheduleItem{
			{Platform: models.PlatformFacebook, DailyBudget: 5000, TotalBudget: 50000, RunDates: []string{"2025-03-01"}},
		},
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 30, 0, 123000000, time.UTC)
	form := &models.CampaignFormData{Industry: "Technology", Budget: "100000", Channels: []string{"Facebook", "TikTok"}}

	data, err := ExportJSON(sampleResult(), form, now)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"generatedAt": "2025-03-01T08:30:00.123Z"`)
	assert.Contains(t, string(data), `"exportVersion": "1.0"`)
	assert.Contains(t, string(data), `<3 & #Launch`)

	doc, err := ParseExport(data)
	require.NoError(t, err)
	assert.Equal(t, sampleResult(), doc.Campaign)
	assert.Equal(t, form, doc.FormData)
	assert.False(t, doc.Campaign.Posts[models.PlatformTikTok].IsList())

	again, err := ExportJSON(doc.Campaign, doc.FormData, now)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestParseExportRejectsEmpty(t *testing.T) {
	_, err := ParseExport([]byte(`{"exportVersion":"1.0"}`))
	assert.ErrorIs(t, err, ErrEmptyExport)

	_, err = ParseExport([]byte(`not json`))
	assert.Error(t, err)
}

func TestExportText(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	text, err := ExportText(sampleResult(), now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "CAMPAIGN EXPORT\n"+strings.Repeat("=", 50)+"\n\nGenerated: 2025-03-01T00:00:00.000Z\n\n"))
	assert.Contains(t, text, "KEY MESSAGES\n"+strings.Repeat("-", 30)+"\n1. เร็ว\n2. ง่าย\n\n")
	assert.Contains(t, text, "PLATFORM CONTENT\n"+strings.Repeat("=", 50)+"\n\n[FACEBOOK]\n")
	assert.Contains(t, text, "Post 2 (Day 2)\nContent:\nวันสอง\n\nVisual Prompt:\nกราฟ\n\n")
	assert.Contains(t, text, "[TIKTOK]\n"+strings.Repeat("-", 30)+"\nContent:\nหยุด!\n\nดูนี่\n\nVisual Prompt:\n"+tiktokVisualPrompt+"\n\n")
	assert.Less(t, strings.Index(text, "[FACEBOOK]"), strings.Index(text, "[TIKTOK]"))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "campaign-1735689600000.txt", ExportFilename("txt", time.UnixMilli(1735689600000)))
}
