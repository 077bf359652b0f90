package campaign

import (
	"testing"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := models.ParseDate(s)
	require.True(t, ok, "bad date %q", s)
	return d
}

func TestPostsPerPlatform(t *testing.T) {
	tests := []struct {
		freq models.PostingFrequency
		days int
		want int
	}{
		{models.FrequencyDaily, 1, 1},
		{models.FrequencyDaily, 5, 5},
		{models.FrequencyDaily, 7, 7},
		{models.FrequencyDaily, 30, 7},
		{models.FrequencyThreeAWeek, 1, 1},
		{models.FrequencyThreeAWeek, 7, 3},
		{models.FrequencyThreeAWeek, 10, 5},
		{models.FrequencyThreeAWeek, 60, 5},
		{models.FrequencyWeekly, 1, 1},
		{models.FrequencyWeekly, 8, 2},
		{models.FrequencyWeekly, 100, 3},
		{"hourly", 30, 1},
		{models.FrequencyDaily, 0, 1},
	}
	for _, tt := range tests {
		got := PostsPerPlatform(tt.freq, tt.days)
		assert.Equal(t, tt.want, got, "%s over %d days", tt.freq, tt.days)
	}
}

func TestPostsPerPlatformBounds(t *testing.T) {
	caps := map[models.PostingFrequency]int{
		models.FrequencyDaily:      7,
		models.FrequencyThreeAWeek: 5,
		models.FrequencyWeekly:     3,
	}
	for freq, limit := range caps {
		for d := 1; d <= 120; d++ {
			n := PostsPerPlatform(freq, d)
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, limit)
		}
	}
}

func TestResolveWindow(t *testing.T) {
	now := date(t, "2025-03-01T09:00:00Z")

	w := ResolveWindow("2025-03-01", "2025-03-08", now)
	assert.Equal(t, 7, w.DurationDays())

	w = ResolveWindow("", "", now)
	assert.Equal(t, now, w.Start)
	assert.Equal(t, 7, w.DurationDays())

	w = ResolveWindow("2025-03-10", "2025-03-01", now)
	assert.Equal(t, 1, w.DurationDays())

	w = ResolveWindow("2025-03-01T00:00:00.000Z", "2025-03-01T12:00:00.000Z", now)
	assert.Equal(t, 1, w.DurationDays())
}

func TestCampaignDays(t *testing.T) {
	start := date(t, "2025-03-01")
	end := date(t, "2025-03-10")

	days := CampaignDays(start, &end)
	require.Len(t, days, 10)
	assert.Equal(t, "2025-03-01", days[0].Format(isoDate))
	assert.Equal(t, "2025-03-10", days[9].Format(isoDate))

	assert.Len(t, CampaignDays(start, nil), 7)

	before := date(t, "2025-02-20")
	assert.Len(t, CampaignDays(start, &before), 1)
}

func TestFormDays(t *testing.T) {
	now := date(t, "2025-05-05T10:30:00Z")

	days := FormDays(&models.CampaignFormData{StartDate: "2025-03-01T00:00:00.000Z", EndDate: "2025-03-03T00:00:00.000Z"}, now)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, ISODates(days))

	days = FormDays(nil, now)
	require.Len(t, days, 7)
	assert.Equal(t, "2025-05-05", days[0].Format(isoDate))
}
