package excel

import (
	"testing"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnToLetter(t *testing.T) {
	tests := map[int]string{1: "A", 10: "J", 26: "Z", 27: "AA", 52: "AZ", 703: "AAA"}
	for in, want := range tests {
		assert.Equal(t, want, columnToLetter(in))
	}
}

func TestBuildCalendar(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	days := []time.Time{start, start.AddDate(0, 0, 1)}
	posts := []models.PostItem{
		{Platform: models.PlatformFacebook, Day: 0, Time: "10:00", Content: "Hello #Sale", Type: "post", Hashtags: []string{"#Sale"}, PostType: models.PostTypeOrganic},
		{Platform: models.PlatformTikTok, Day: 1, Time: "20:00", Content: "Hook\n\nScript", Type: "video", PostType: models.PostTypeAd},
	}
	schedule := []models.AdScheduleItem{
		{Platform: models.PlatformTikTok, DailyBudget: 500, TotalBudget: 1000, RunDates: []string{"2025-03-01", "2025-03-02"}},
	}

	buf, err := NewExcelService().BuildCalendar(posts, days, schedule)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{CalendarSheet, AdScheduleSheet}, f.GetSheetList())

	rows, err := f.GetRows(CalendarSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, calendarColumns, rows[0])
	assert.Equal(t, []string{"2025-03-01", "1", "10:00", "Facebook", "organic", "post", "Hello #Sale", "", "#Sale"}, rows[1])
	assert.Equal(t, "2025-03-02", rows[2][0])
	assert.Equal(t, "Hook\n\nScript", rows[2][6])

	platform, err := f.GetCellValue(AdScheduleSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "TikTok", platform)
	runDays, err := f.GetCellValue(AdScheduleSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "2", runDays)
	last, err := f.GetCellValue(AdScheduleSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", last)
}

func TestBuildCalendarEmpty(t *testing.T) {
	buf, err := NewExcelService().BuildCalendar(nil, nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(CalendarSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "no posts in this campaign", v)
	v, err = f.GetCellValue(AdScheduleSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "no ad schedule (organic campaign)", v)
}
