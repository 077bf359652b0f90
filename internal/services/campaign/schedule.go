package campaign

import (
	"math"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

const (
	day = 24 * time.Hour

	// defaultWindow is used when the request carries no end date
	defaultWindow = 7 * day

	maxDailyPosts      = 7
	maxThreeAWeekPosts = 5
	maxWeeklyPosts     = 3

	isoDate = "2006-01-02"
)

// Window is the resolved campaign period of a generation request
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow applies the request defaults: start is now, end is a week from now
func ResolveWindow(startDate, endDate string, now time.Time) Window {
	start, ok := models.ParseDate(startDate)
	if !ok {
		start = now
	}
	end, ok := models.ParseDate(endDate)
	if !ok {
		end = now.Add(defaultWindow)
	}
	return Window{Start: start, End: end}
}

// DurationDays is ceil((end-start)/day), never below one
func (w Window) DurationDays() int {
	days := int(math.Ceil(float64(w.End.Sub(w.Start)) / float64(day)))
	if days < 1 {
		return 1
	}
	return days
}

// PostsPerPlatform derives how many posts each platform gets for a frequency and duration
func PostsPerPlatform(frequency models.PostingFrequency, days int) int {
	if days < 1 {
		days = 1
	}
	n := 1
	switch frequency {
	case models.FrequencyDaily:
		n = min(days, maxDailyPosts)
	case models.FrequencyThreeAWeek:
		n = min(ceilDiv(days*3, 7), maxThreeAWeekPosts)
	case models.FrequencyWeekly:
		n = min(ceilDiv(days, 7), maxWeeklyPosts)
	}
	if n < 1 {
		return 1
	}
	return n
}

// EffectiveFrequency defaults an empty frequency to daily
func EffectiveFrequency(f models.PostingFrequency) models.PostingFrequency {
	if f == "" {
		return models.FrequencyDaily
	}
	return f
}

// CampaignDays lists every calendar day from start to end inclusive.
// A missing end means a seven day campaign; an end before start yields the start day only.
func CampaignDays(start time.Time, end *time.Time) []time.Time {
	first := truncateDay(start)
	last := first.AddDate(0, 0, 6)
	if end != nil {
		last = truncateDay(*end)
	}
	if last.Before(first) {
		last = first
	}
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// FormDays resolves the calendar days of a brief
func FormDays(f *models.CampaignFormData, now time.Time) []time.Time {
	if f == nil {
		return CampaignDays(now, nil)
	}
	start, ok := f.Start()
	if !ok {
		start = now
	}
	if end, ok := f.End(); ok {
		return CampaignDays(start, &end)
	}
	return CampaignDays(start, nil)
}

// ISODates formats days as YYYY-MM-DD
func ISODates(days []time.Time) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(isoDate)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
