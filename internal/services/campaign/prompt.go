package campaign

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

const notSpecified = "ไม่ระบุ"

// SystemPrompt is sent as the system message of every generation
const SystemPrompt = `คุณเป็นผู้เชี่ยวชาญด้านการตลาดดิจิทัลในประเทศไทย มีประสบการณ์ 10+ ปี ในการสร้างแคมเปญการตลาดที่ประสบความสำเร็จ

หลักการสำคัญ:
- เข้าใจวัฒนธรรมไทยและพฤติกรรมผู้บริโภค
- สร้างเนื้อหาที่เหมาะสมกับแต่ละแพลตฟอร์ม
- ใช้ภาษาไทยที่เป็นธรรมชาติและน่าสนใจ
- คำนึงถึงงบประมาณและ ROI
- สร้างกลยุทธ์ที่วัดผลได้

ตอบเป็นภาษาไทยเสมอ และให้ข้อมูลที่ครบถ้วน เป็นประโยชน์`

// dayThemes guides the model to vary content across the week
var dayThemes = []string{
	"แนะนำ/เปิดตัว",
	"ประโยชน์/คุณค่า",
	"เคล็ดลับ/วิธีการ",
	"เรื่องราว/ตัวอย่าง",
	"รีวิว/ความคิดเห็น",
	"โปรโมชั่น/ข้อเสนอ",
	"สรุป/เรียกร้องให้ดำเนินการ",
}

// BuildPrompt renders the Thai generation prompt for the request mode.
// It never fails: missing fields are rendered as ไม่ระบุ.
func BuildPrompt(req *models.GenerateCampaignRequest, now time.Time) string {
	if req.EffectiveMode() == models.ModeFull {
		return buildFullPrompt(req, now)
	}
	return buildPreviewPrompt(req)
}

func buildPreviewPrompt(req *models.GenerateCampaignRequest) string {
	var b strings.Builder
	b.WriteString("สร้างแคมเปญการตลาดสำหรับ:\n\n")
	fmt.Fprintf(&b, "ชื่อแคมเปญ: %s\n", orDefault(req.Name, notSpecified))
	fmt.Fprintf(&b, "วัตถุประสงค์: %s\n", orDefault(req.Objective, notSpecified))
	fmt.Fprintf(&b, "กลุ่มเป้าหมาย: %s\n", orDefault(req.TargetAudience, notSpecified))
	fmt.Fprintf(&b, "แพลตฟอร์ม: %s\n", orDefault(joinPlatforms(req.SelectedPlatforms()), notSpecified))
	fmt.Fprintf(&b, "งบประมาณ: %s\n", orDefault(string(req.Budget), notSpecified))
	if req.StartDate != "" && req.EndDate != "" {
		fmt.Fprintf(&b, "ระยะเวลา: %s ถึง %s\n", req.StartDate, req.EndDate)
	}
	fmt.Fprintf(&b, "กลยุทธ์เนื้อหา: %s\n", orDefault(string(req.ContentStrategy), notSpecified))
	fmt.Fprintf(&b, "ความถี่การโพสต์: %s", orDefault(string(req.PostingFrequency), notSpecified))
	b.WriteString(focusContext(req))
	b.WriteString(`

กรุณาตอบกลับเป็น JSON object เท่านั้น ไม่ต้องมีข้อความอื่น ไม่ต้องใส่ markdown code blocks:

{
  "campaign_summary": "สรุปแคมเปญ 2-3 ประโยค",
  "big_idea": "ไอเดียหลักของแคมเปญ",
  "key_messages": ["ข้อความสำคัญ 1", "ข้อความสำคัญ 2", "ข้อความสำคัญ 3"],
  "visual_direction": "คำแนะนำการออกแบบภาพ"
}

ตอบเป็นภาษาไทยเท่านั้น และตอบเป็น JSON object เท่านั้น`)
	return b.String()
}

func buildFullPrompt(req *models.GenerateCampaignRequest, now time.Time) string {
	platforms := req.SelectedPlatforms()
	frequency := EffectiveFrequency(req.PostingFrequency)
	window := ResolveWindow(req.StartDate, req.EndDate, now)
	postsNeeded := PostsPerPlatform(frequency, window.DurationDays())

	preview := req.ExistingPreview
	if preview == nil {
		preview = &models.CampaignPreview{}
	}

	var b strings.Builder
	b.WriteString("สร้างเนื้อหาแคมเปญเต็มรูปแบบสำหรับแพลตฟอร์มที่เลือกไว้เท่านั้น:\n\n")
	b.WriteString("ข้อมูลแคมเปญ:\n")
	fmt.Fprintf(&b, "ชื่อแคมเปญ: %s\n", orDefault(req.Name, notSpecified))
	fmt.Fprintf(&b, "วัตถุประสงค์: %s\n", orDefault(req.Objective, notSpecified))
	fmt.Fprintf(&b, "กลุ่มเป้าหมาย: %s\n", orDefault(req.TargetAudience, notSpecified))
	fmt.Fprintf(&b, "แพลตฟอร์มที่เลือก: %s\n", joinPlatforms(platforms))
	fmt.Fprintf(&b, "งบประมาณ: %s\n", orDefault(string(req.Budget), notSpecified))
	fmt.Fprintf(&b, "ระยะเวลา: %s ถึง %s (%d วัน)\n", window.Start.Format(isoDate), window.End.Format(isoDate), window.DurationDays())
	fmt.Fprintf(&b, "โฟกัสแคมเปญ: %s\n", orDefault(req.CampaignFocus, "general"))
	fmt.Fprintf(&b, "กลยุทธ์เนื้อหา: %s\n", orDefault(string(req.ContentStrategy), string(models.StrategyOrganic)))
	fmt.Fprintf(&b, "ความถี่การโพสต์: %s\n", frequency)
	fmt.Fprintf(&b, "จำนวนโพสต์ที่ต้องการ: %d โพสต์ต่อแพลตฟอร์ม", postsNeeded)
	b.WriteString(focusContext(req))

	b.WriteString("\n\nข้อมูลจากตัวอย่าง:\n")
	fmt.Fprintf(&b, "สรุปแคมเปญ: %s\n", preview.CampaignSummary)
	fmt.Fprintf(&b, "ไอเดียหลัก: %s\n", preview.BigIdea)
	fmt.Fprintf(&b, "ข้อความสำคัญ: %s\n\n", strings.Join(preview.KeyMessages, ", "))

	b.WriteString("**สำคัญมาก: สร้างเนื้อหาที่แตกต่างกันในแต่ละวัน ห้ามใช้เนื้อหาเดียวกัน**\n")
	fmt.Fprintf(&b, "**สร้าง %d โพสต์ที่มีเนื้อหาแตกต่างกันสำหรับแต่ละแพลตฟอร์ม**\n", postsNeeded)
	b.WriteString("**แต่ละโพสต์ต้องมีมุมมอง เนื้อหา และ CTA ที่แตกต่างกัน**\n\n")

	b.WriteString("ตัวอย่างความแตกต่างของเนื้อหา:\n")
	for i, theme := range dayThemes {
		fmt.Fprintf(&b, "- วันที่ %d: %s\n", i+1, theme)
	}

	b.WriteString("\nรูปแบบ JSON ที่ต้องการ:\n")
	b.WriteString("{\n")
	b.WriteString("  \"campaign_summary\": \"สรุปแคมเปญ\",\n")
	b.WriteString("  \"big_idea\": \"ไอเดียหลัก\",\n")
	b.WriteString("  \"key_messages\": [\"ข้อความสำคัญ\"],\n")
	b.WriteString("  \"visual_direction\": \"ทิศทางการออกแบบ\",\n")
	b.WriteString("  \"posts\": {\n    ")
	examples := make([]string, 0, len(platforms))
	for _, p := range platforms {
		examples = append(examples, platformExample(p, postsNeeded))
	}
	b.WriteString(strings.Join(examples, ",\n    "))
	b.WriteString("\n  }\n}\n\n")
	b.WriteString("ตอบเป็นภาษาไทยเท่านั้น และตอบเป็น JSON object เท่านั้น ห้ามใส่แพลตฟอร์มอื่นที่ไม่ได้เลือก")
	return b.String()
}

// platformExample renders the JSON shape the model must return for one platform
func platformExample(p models.Platform, n int) string {
	entries := make([]string, n)
	for i := 0; i < n; i++ {
		d := i + 1
		switch p {
		case models.PlatformFacebook:
			entries[i] = fmt.Sprintf(`{"caption": "แคปชั่น Facebook วันที่ %d (เนื้อหาต่างจากวันอื่น)", "visual_prompt": "คำแนะนำภาพ Facebook วันที่ %d", "day": %d}`, d, d, d)
		case models.PlatformInstagram:
			entries[i] = fmt.Sprintf(`{"caption": "แคปชั่น Instagram วันที่ %d (เนื้อหาต่างจากวันอื่น)", "visual_prompt": "คำแนะนำภาพ Instagram วันที่ %d", "day": %d}`, d, d, d)
		case models.PlatformTikTok:
			entries[i] = fmt.Sprintf(`{"script": "สคริปต์ TikTok วันที่ %d (เนื้อหาต่างจากวันอื่น)", "hook": "Hook TikTok วันที่ %d", "day": %d}`, d, d, d)
		case models.PlatformYouTube:
			entries[i] = fmt.Sprintf(`{"title": "หัวข้อ YouTube วันที่ %d (เนื้อหาต่างจากวันอื่น)", "description": "คำอธิบาย YouTube วันที่ %d", "day": %d}`, d, d, d)
		case models.PlatformLineOA:
			entries[i] = fmt.Sprintf(`{"message": "ข้อความ Line OA วันที่ %d (เนื้อหาต่างจากวันอื่น)", "cta": "CTA วันที่ %d", "day": %d}`, d, d, d)
		}
	}
	return fmt.Sprintf("%q: [%s]", string(p), strings.Join(entries, ", "))
}

// focusContext renders the product/service/organization block, or nothing
func focusContext(req *models.GenerateCampaignRequest) string {
	if req.FocusType == "" || len(req.FocusData) == 0 {
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(req.FocusData); err != nil {
		return ""
	}
	return fmt.Sprintf("\n\nข้อมูลเฉพาะ %s:\n%s", req.FocusType, strings.TrimRight(buf.String(), "\n"))
}

func joinPlatforms(platforms []models.Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
