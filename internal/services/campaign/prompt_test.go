package campaign

import (
	"strings"
	"testing"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildPreviewPrompt(t *testing.T) {
	req := &models.GenerateCampaignRequest{
		Name:      "Smart Analytics Launch",
		Platforms: []string{"Facebook", "TikTok"},
		Budget:    "100000",
	}
	prompt := BuildPrompt(req, date(t, "2025-03-01"))

	assert.Contains(t, prompt, "ชื่อแคมเปญ: Smart Analytics Launch")
	assert.Contains(t, prompt, "แพลตฟอร์ม: Facebook, TikTok")
	assert.Contains(t, prompt, "วัตถุประสงค์: ไม่ระบุ")
	assert.Contains(t, prompt, "งบประมาณ: 100000")
	assert.Contains(t, prompt, `"campaign_summary"`)
	assert.NotContains(t, prompt, "posts")
	assert.True(t, strings.HasSuffix(prompt, "ตอบเป็นภาษาไทยเท่านั้น และตอบเป็น JSON object เท่านั้น"))
}

func TestBuildPreviewPromptEmptyRequest(t *testing.T) {
	prompt := BuildPrompt(&models.GenerateCampaignRequest{}, date(t, "2025-03-01"))
	assert.Contains(t, prompt, "แพลตฟอร์ม: ไม่ระบุ")
	assert.Contains(t, prompt, "งบประมาณ: ไม่ระบุ")
}

func TestBuildFullPromptOnlySelectedPlatforms(t *testing.T) {
	req := &models.GenerateCampaignRequest{
		Mode:             models.ModeFull,
		Name:             "Green Café Week",
		Platforms:        []string{"Instagram", "Line OA"},
		PostingFrequency: models.FrequencyThreeAWeek,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-11",
		ExistingPreview: &models.CampaignPreview{
			CampaignSummary: "สรุป",
			BigIdea:         "ไอเดีย",
			KeyMessages:     []string{"หนึ่ง", "สอง"},
		},
	}
	prompt := BuildPrompt(req, date(t, "2025-03-01"))

	assert.Contains(t, prompt, "จำนวนโพสต์ที่ต้องการ: 5 โพสต์ต่อแพลตฟอร์ม")
	assert.Contains(t, prompt, "**สร้าง 5 โพสต์ที่มีเนื้อหาแตกต่างกันสำหรับแต่ละแพลตฟอร์ม**")
	assert.Contains(t, prompt, "ข้อความสำคัญ: หนึ่ง, สอง")
	assert.Contains(t, prompt, `"Instagram": [`)
	assert.Contains(t, prompt, `"Line OA": [`)
	assert.Contains(t, prompt, "ข้อความ Line OA วันที่ 5")
	assert.NotContains(t, prompt, `"Facebook"`)
	assert.NotContains(t, prompt, `"TikTok"`)
	assert.NotContains(t, prompt, "ข้อความ Line OA วันที่ 6")
	assert.Contains(t, prompt, "วันที่ 1: แนะนำ/เปิดตัว")
	assert.Contains(t, prompt, "วันที่ 7: สรุป/เรียกร้องให้ดำเนินการ")
	assert.Contains(t, prompt, "โฟกัสแคมเปญ: general")
}

func TestBuildPromptFocusContext(t *testing.T) {
	req := &models.GenerateCampaignRequest{
		Name:      "Coffee",
		Platforms: []string{"Facebook"},
		FocusType: "product",
		FocusData: map[string]interface{}{"name": "Organic Coffee Blend", "price": 450},
	}
	prompt := BuildPrompt(req, date(t, "2025-03-01"))
	assert.Contains(t, prompt, "ข้อมูลเฉพาะ product:\n{\n  \"name\": \"Organic Coffee Blend\",\n  \"price\": 450\n}")
}
