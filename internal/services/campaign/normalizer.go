package campaign

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNoJSONObject is returned when the reply contains no {...} block
var ErrNoJSONObject = errors.New("no JSON object in LLM reply")

// ParseError reports that the LLM reply could not be decoded.
// Normalize still returns a complete result alongside it.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse LLM reply: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const (
	fallbackSummary         = "สรุปแคมเปญจาก AI"
	fallbackBigIdea         = "ไอเดียหลักจาก AI"
	fallbackVisualDirection = "คำแนะนำการออกแบบจาก AI"
	defaultCampaignName     = "แคมเปญ"
)

var fallbackKeyMessages = []string{"ข้อความสำคัญ 1", "ข้อความสำคัญ 2", "ข้อความสำคัญ 3"}

// postTimes is the time rotation of reconciled posts
var postTimes = []string{"10:00", "14:00", "18:00", "20:00"}

var (
	jsonFencePattern  = regexp.MustCompile("```json\\s*")
	plainFencePattern = regexp.MustCompile("```\\s*")
	objectPattern     = regexp.MustCompile(`\{[\s\S]*\}`)
)

// ParseResponse strips code fences from the reply and decodes the outermost JSON object
func ParseResponse(text string) (map[string]interface{}, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = jsonFencePattern.ReplaceAllString(cleaned, "")
	cleaned = plainFencePattern.ReplaceAllString(cleaned, "")

	match := objectPattern.FindString(cleaned)
	if match == "" {
		return nil, ErrNoJSONObject
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, fmt.Errorf("decode JSON object: %w", err)
	}
	if raw == nil {
		return nil, ErrNoJSONObject
	}
	return raw, nil
}

// parseFailureFallback is the object used in place of an unreadable reply
func parseFailureFallback() map[string]interface{} {
	return map[string]interface{}{
		"campaign_summary": "เกิดข้อผิดพลาดในการแปลง JSON - ใช้ข้อมูลตัวอย่าง",
		"big_idea":         "ไอเดียหลัก: สร้างแคมเปญที่น่าสนใจและมีประสิทธิภาพ",
		"key_messages": []interface{}{
			"ข้อความสำคัญ 1: เน้นคุณค่าของผลิตภัณฑ์",
			"ข้อความสำคัญ 2: สร้างความเชื่อมั่น",
			"ข้อความสำคัญ 3: เรียกร้องให้ลูกค้าดำเนินการ",
		},
		"visual_direction": "ใช้สีสันสดใส ภาพที่มีคุณภาพสูง และการออกแบบที่สะอาดตา",
	}
}

// Normalize turns a raw LLM reply into a complete result. It always returns a usable
// result; a non-nil error is a *ParseError telling the caller the fallback was used.
func Normalize(text string, req *models.GenerateCampaignRequest, now time.Time) (*models.CampaignResult, error) {
	raw, err := ParseResponse(text)
	var parseErr error
	if err != nil {
		logrus.WithError(err).WithField("mode", req.EffectiveMode()).Warn("LLM reply is not valid JSON, using fallback content")
		raw = parseFailureFallback()
		parseErr = &ParseError{Err: err}
	}
	return Reconcile(raw, req, now), parseErr
}

// Reconcile fills every required field of the decoded reply. In full mode the posts are
// rebuilt for exactly the requested platforms and post count.
func Reconcile(raw map[string]interface{}, req *models.GenerateCampaignRequest, now time.Time) *models.CampaignResult {
	result := &models.CampaignResult{
		CampaignPreview: models.CampaignPreview{
			CampaignSummary:  textOr(raw, "campaign_summary", fallbackSummary),
			BigIdea:          textOr(raw, "big_idea", fallbackBigIdea),
			KeyMessages:      stringList(raw["key_messages"]),
			VisualDirection:  textOr(raw, "visual_direction", fallbackVisualDirection),
			AudienceInsights: textOr(raw, "audience_insights", ""),
			ChannelStrategy:  textOr(raw, "channel_strategy", ""),
		},
	}
	if len(result.KeyMessages) == 0 {
		result.KeyMessages = append([]string(nil), fallbackKeyMessages...)
	}

	if req.EffectiveMode() != models.ModeFull {
		return result
	}

	window := ResolveWindow(req.StartDate, req.EndDate, now)
	count := PostsPerPlatform(EffectiveFrequency(req.PostingFrequency), window.DurationDays())
	aiPosts, _ := raw["posts"].(map[string]interface{})

	result.Posts = make(map[models.Platform]*models.PlatformPosts)
	for _, platform := range req.SelectedPlatforms() {
		entries := platformEntries(aiPosts, platform)
		items := make([]models.PostItemData, count)
		for i := 0; i < count; i++ {
			var entry map[string]interface{}
			if i < len(entries) {
				entry, _ = entries[i].(map[string]interface{})
			}
			items[i] = reconcilePost(platform, entry, i, req)
		}
		result.Posts[platform] = models.NewPostList(items...)
	}
	return result
}

// reconcilePost merges AI content with the day template of a platform
func reconcilePost(platform models.Platform, entry map[string]interface{}, i int, req *models.GenerateCampaignRequest) models.PostItemData {
	day := i + 1
	item := models.PostItemData{
		Day:      &day,
		Time:     postTimes[i%len(postTimes)],
		PostType: postTypeFor(req.ContentStrategy, i),
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultCampaignName
	}

	switch platform {
	case models.PlatformFacebook:
		item.SetContent(models.FacebookPost{
			Caption:      textOr(entry, "caption", fmt.Sprintf("โพสต์ Facebook วันที่ %d สำหรับ %s - เนื้อหาแตกต่างกันในแต่ละวัน", day, name)),
			VisualPrompt: textOr(entry, "visual_prompt", fmt.Sprintf("ภาพที่เหมาะสมกับ Facebook วันที่ %d", day)),
		})
	case models.PlatformInstagram:
		tag := strings.Join(strings.Fields(req.Name), "")
		if tag == "" {
			tag = defaultCampaignName
		}
		item.SetContent(models.InstagramPost{
			Caption:      textOr(entry, "caption", fmt.Sprintf("โพสต์ Instagram วันที่ %d #%s #Day%d", day, tag, day)),
			VisualPrompt: textOr(entry, "visual_prompt", fmt.Sprintf("ภาพสวยสำหรับ Instagram วันที่ %d", day)),
			Carousel:     stringList(entry["carousel"]),
		})
	case models.PlatformTikTok:
		item.SetContent(models.TikTokPost{
			Script: textOr(entry, "script", fmt.Sprintf("สคริปต์ TikTok วันที่ %d เกี่ยวกับ %s - มุมมองใหม่ในแต่ละวัน", day, name)),
			Hook:   textOr(entry, "hook", fmt.Sprintf("Hook TikTok ที่ดึงดูดใจวันที่ %d", day)),
		})
	case models.PlatformYouTube:
		item.SetContent(models.YouTubePost{
			Title:       textOr(entry, "title", fmt.Sprintf("วิดีโอ YouTube วันที่ %d: %s - เนื้อหาพิเศษ", day, name)),
			Description: textOr(entry, "description", fmt.Sprintf("คำอธิบายวิดีโอ YouTube วันที่ %d", day)),
		})
	case models.PlatformLineOA:
		item.SetContent(models.LineOAPost{
			Message: textOr(entry, "message", fmt.Sprintf("ข้อความ Line OA วันที่ %d สำหรับ %s - เนื้อหาใหม่ทุกวัน", day, name)),
			CTA:     textOr(entry, "cta", fmt.Sprintf("เรียนรู้เพิ่มเติมวันที่ %d", day)),
		})
	}
	return item
}

// postTypeFor derives the badge of the i-th post from the content strategy
func postTypeFor(strategy models.ContentStrategy, i int) models.PostType {
	switch strategy {
	case models.StrategyPaid:
		return models.PostTypeAd
	case models.StrategyMixed:
		if i%2 == 1 {
			return models.PostTypeBoosted
		}
		return models.PostTypeOrganic
	default:
		return models.PostTypeOrganic
	}
}

// platformEntries returns the model's post array for a platform, or nil when it is not an array
func platformEntries(posts map[string]interface{}, platform models.Platform) []interface{} {
	if posts == nil {
		return nil
	}
	if v, ok := posts[string(platform)]; ok {
		entries, _ := v.([]interface{})
		return entries
	}
	for key, v := range posts {
		if p, ok := models.ParsePlatform(key); ok && p == platform {
			entries, _ := v.([]interface{})
			return entries
		}
	}
	return nil
}

// textOr returns the sanitized string field of obj, or fallback when it is missing or blank
func textOr(obj map[string]interface{}, key, fallback string) string {
	if obj == nil {
		return fallback
	}
	s, ok := obj[key].(string)
	if !ok {
		return fallback
	}
	if s = SanitizeText(s); s == "" {
		return fallback
	}
	return s
}

// stringList reads a JSON array of strings, dropping blank entries
func stringList(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, el := range arr {
		var s string
		switch t := el.(type) {
		case string:
			s = SanitizeText(t)
		case float64, bool:
			s = fmt.Sprint(t)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
