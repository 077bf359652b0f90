package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Platform is a social channel a campaign can publish to
type Platform string

const (
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
	PlatformLineOA    Platform = "Line OA"
)

// Platforms lists every supported channel in display order
var Platforms = []Platform{PlatformFacebook, PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformLineOA}

// ParsePlatform matches a channel name, case-insensitively
func ParsePlatform(name string) (Platform, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Platforms {
		if strings.EqualFold(string(p), name) {
			return p, true
		}
	}
	return "", false
}

// ContentStrategy decides whether posts are organic, paid or both
type ContentStrategy string

const (
	StrategyOrganic ContentStrategy = "organic"
	StrategyPaid    ContentStrategy = "paid"
	StrategyMixed   ContentStrategy = "mixed"
)

// RunsAds reports whether the strategy needs an ad schedule
func (s ContentStrategy) RunsAds() bool {
	return s == StrategyPaid || s == StrategyMixed
}

// PostingFrequency controls how many posts are generated per platform
type PostingFrequency string

const (
	FrequencyDaily      PostingFrequency = "daily"
	FrequencyThreeAWeek PostingFrequency = "3-per-week"
	FrequencyWeekly     PostingFrequency = "weekly"
)

// PostType is the badge shown on a scheduled post
type PostType string

const (
	PostTypeOrganic PostType = "organic"
	PostTypeBoosted PostType = "boosted"
	PostTypeAd      PostType = "ad"
)

// GenerationMode selects the preview or the full campaign prompt
type GenerationMode string

const (
	ModePreview GenerationMode = "preview"
	ModeFull    GenerationMode = "full"
)

// BudgetCustom marks a form budget that is carried by CustomBudget
const BudgetCustom = "custom"

// BudgetOptions are the preset budgets offered by the campaign form (THB)
var BudgetOptions = []string{"10000", "30000", "50000", "100000", "300000", "500000", "1000000"}

// CampaignFormData is the campaign brief entered by the user
type CampaignFormData struct {
	Industry         string           `json:"industry" example:"Technology"`
	TargetAudience   string           `json:"targetAudience" example:"SME Business Owners"`
	Objective        string           `json:"objective" example:"Brand Awareness"`
	Budget           string           `json:"budget" example:"100000"`
	CustomBudget     string           `json:"customBudget,omitempty" example:"75000"`
	StartDate        string           `json:"startDate,omitempty" example:"2025-03-01T00:00:00.000Z"`
	EndDate          string           `json:"endDate,omitempty" example:"2025-03-10T00:00:00.000Z"`
	Channels         []string         `json:"channels" example:"Facebook,TikTok"`
	CreativeTheme    string           `json:"creativeTheme" example:"Work smarter"`
	KPIs             []string         `json:"kpis,omitempty"`
	CampaignBrief    string           `json:"campaignBrief,omitempty"`
	ContentStrategy  ContentStrategy  `json:"contentStrategy" example:"organic"`
	PostingFrequency PostingFrequency `json:"postingFrequency" example:"daily"`
	OrganizationID   string           `json:"organization_id,omitempty" example:"org1"`
	ProductID        string           `json:"product_id,omitempty" example:"prod1"`
	ServiceID        string           `json:"service_id,omitempty"`
	CampaignFocus    string           `json:"campaign_focus,omitempty" example:"product"`
}

var (
	ErrNoChannels      = errors.New("at least one channel is required")
	ErrInvalidBudget   = errors.New("budget must be a preset amount or custom with a positive customBudget")
	ErrUnknownStrategy = errors.New("unknown content strategy")
)

// Validate checks the brief invariants: budget is a preset or custom, channels are known and non-empty
func (f *CampaignFormData) Validate() error {
	if len(f.Channels) == 0 {
		return ErrNoChannels
	}
	for _, ch := range f.Channels {
		if _, ok := ParsePlatform(ch); !ok {
			return fmt.Errorf("unknown channel %q", ch)
		}
	}
	if _, err := f.TotalBudget(); err != nil {
		return err
	}
	switch f.ContentStrategy {
	case "", StrategyOrganic, StrategyPaid, StrategyMixed:
	default:
		return ErrUnknownStrategy
	}
	switch f.PostingFrequency {
	case "", FrequencyDaily, FrequencyThreeAWeek, FrequencyWeekly:
	default:
		return fmt.Errorf("unknown posting frequency %q", f.PostingFrequency)
	}
	return nil
}

// TotalBudget resolves the numeric budget of the brief
func (f *CampaignFormData) TotalBudget() (float64, error) {
	if f.Budget == BudgetCustom {
		v, ok := FlexString(f.CustomBudget).Float()
		if !ok || v <= 0 {
			return 0, ErrInvalidBudget
		}
		return v, nil
	}
	for _, opt := range BudgetOptions {
		if f.Budget == opt {
			v, _ := strconv.ParseFloat(opt, 64)
			return v, nil
		}
	}
	return 0, ErrInvalidBudget
}

// SelectedPlatforms returns the known channels of the brief, deduplicated, in form order
func (f *CampaignFormData) SelectedPlatforms() []Platform {
	return NormalizePlatforms(f.Channels)
}

// Start returns the parsed start date, if any
func (f *CampaignFormData) Start() (time.Time, bool) {
	return ParseDate(f.StartDate)
}

// End returns the parsed end date, if any
func (f *CampaignFormData) End() (time.Time, bool) {
	return ParseDate(f.EndDate)
}

// NormalizePlatforms maps names to platforms, dropping unknown names and duplicates
func NormalizePlatforms(names []string) []Platform {
	seen := make(map[Platform]bool, len(names))
	out := make([]Platform, 0, len(names))
	for _, name := range names {
		p, ok := ParsePlatform(name)
		if !ok || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts the ISO forms browsers and date pickers send
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FlexString decodes a JSON string or number into its text form
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*s = FlexString(n.String())
	return nil
}

// Float parses the value as a finite number. NaN and Inf are rejected.
func (s FlexString) Float() (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(string(s)), ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
