package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CampaignPreview is the short LLM summary shown before full generation
type CampaignPreview struct {
	CampaignSummary  string   `json:"campaign_summary" example:"แคมเปญสร้างการรับรู้สำหรับเจ้าของธุรกิจ SME"`
	BigIdea          string   `json:"big_idea" example:"ทำงานน้อยลง ได้ผลมากขึ้น"`
	KeyMessages      []string `json:"key_messages"`
	VisualDirection  string   `json:"visual_direction"`
	AudienceInsights string   `json:"audience_insights,omitempty"`
	ChannelStrategy  string   `json:"channel_strategy,omitempty"`
}

// CampaignResult is a preview plus per-platform posts and an optional ad schedule
type CampaignResult struct {
	CampaignPreview
	Posts      map[Platform]*PlatformPosts `json:"posts,omitempty"`
	AdSchedule []AdScheduleItem            `json:"ad_schedule,omitempty"`
}

// AdScheduleItem is the paid budget allocation of one platform
type AdScheduleItem struct {
	Platform    Platform `json:"platform" example:"Facebook"`
	DailyBudget float64  `json:"daily_budget" example:"5000"`
	TotalBudget float64  `json:"total_budget" example:"50000"`
	RunDates    []string `json:"run_dates"`
}

// PostItemData is one generated post in its platform-native wire shape
type PostItemData struct {
	Day          *int     `json:"day,omitempty"`
	Time         string   `json:"time,omitempty"`
	PostType     PostType `json:"postType,omitempty"`
	Caption      string   `json:"caption,omitempty"`
	VisualPrompt string   `json:"visual_prompt,omitempty"`
	Carousel     []string `json:"carousel,omitempty"`
	Hook         string   `json:"hook,omitempty"`
	Script       string   `json:"script,omitempty"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Message      string   `json:"message,omitempty"`
	CTA          string   `json:"cta,omitempty"`
}

// PlatformPosts holds the posts of one platform: a legacy single object or an ordered list.
// The JSON form keeps whichever shape was decoded.
type PlatformPosts struct {
	Single *PostItemData
	Items  []PostItemData
}

// NewPostList wraps posts in the list shape
func NewPostList(items ...PostItemData) *PlatformPosts {
	if items == nil {
		items = []PostItemData{}
	}
	return &PlatformPosts{Items: items}
}

// NewSinglePost wraps a post in the legacy single-object shape
func NewSinglePost(item PostItemData) *PlatformPosts {
	return &PlatformPosts{Single: &item}
}

// IsList reports whether the posts use the array shape
func (p *PlatformPosts) IsList() bool {
	return p.Single == nil
}

// Len returns the number of posts
func (p *PlatformPosts) Len() int {
	if p == nil {
		return 0
	}
	if p.Single != nil {
		return 1
	}
	return len(p.Items)
}

// At returns the post at index i, or nil
func (p *PlatformPosts) At(i int) *PostItemData {
	if p == nil || i < 0 {
		return nil
	}
	if p.Single != nil {
		if i == 0 {
			return p.Single
		}
		return nil
	}
	if i >= len(p.Items) {
		return nil
	}
	return &p.Items[i]
}

func (p PlatformPosts) MarshalJSON() ([]byte, error) {
	if p.Single != nil {
		return json.Marshal(p.Single)
	}
	if p.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.Items)
}

func (p *PlatformPosts) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*p = PlatformPosts{Items: []PostItemData{}}
		return nil
	case data[0] == '[':
		var items []PostItemData
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		if items == nil {
			items = []PostItemData{}
		}
		*p = PlatformPosts{Items: items}
		return nil
	case data[0] == '{':
		var item PostItemData
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*p = PlatformPosts{Single: &item}
		return nil
	default:
		return fmt.Errorf("posts must be an object or an array")
	}
}

// Clone returns a deep copy
func (p *PlatformPosts) Clone() *PlatformPosts {
	if p == nil {
		return nil
	}
	if p.Single != nil {
		c := p.Single.Clone()
		return &PlatformPosts{Single: &c}
	}
	items := make([]PostItemData, len(p.Items))
	for i := range p.Items {
		items[i] = p.Items[i].Clone()
	}
	return &PlatformPosts{Items: items}
}

// Clone returns a deep copy
func (d PostItemData) Clone() PostItemData {
	if d.Day != nil {
		day := *d.Day
		d.Day = &day
	}
	if d.Carousel != nil {
		d.Carousel = append([]string(nil), d.Carousel...)
	}
	return d
}

// Clone returns a deep copy
func (p *CampaignPreview) Clone() *CampaignPreview {
	if p == nil {
		return nil
	}
	c := *p
	c.KeyMessages = append([]string(nil), p.KeyMessages...)
	return &c
}

// Clone returns a deep copy
func (r *CampaignResult) Clone() *CampaignResult {
	if r == nil {
		return nil
	}
	c := &CampaignResult{CampaignPreview: *r.CampaignPreview.Clone()}
	if r.Posts != nil {
		c.Posts = make(map[Platform]*PlatformPosts, len(r.Posts))
		for k, v := range r.Posts {
			c.Posts[k] = v.Clone()
		}
	}
	if r.AdSchedule != nil {
		c.AdSchedule = make([]AdScheduleItem, len(r.AdSchedule))
		for i, item := range r.AdSchedule {
			item.RunDates = append([]string(nil), item.RunDates...)
			c.AdSchedule[i] = item
		}
	}
	return c
}

// OrderedPlatforms returns the platforms present in Posts in display order
func (r *CampaignResult) OrderedPlatforms() []Platform {
	var out []Platform
	for _, p := range Platforms {
		if posts, ok := r.Posts[p]; ok && posts != nil {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy
func (f *CampaignFormData) Clone() *CampaignFormData {
	if f == nil {
		return nil
	}
	c := *f
	c.Channels = append([]string(nil), f.Channels...)
	c.KPIs = append([]string(nil), f.KPIs...)
	return &c
}
