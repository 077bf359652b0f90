package campaign

import (
	"math"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

// AllocateAdSchedule splits the total budget evenly across platforms and campaign days.
// Every platform runs on every day of the campaign. Organic campaigns get no schedule.
func AllocateAdSchedule(strategy models.ContentStrategy, total float64, platforms []models.Platform, start time.Time, end *time.Time) []models.AdScheduleItem {
	if !strategy.RunsAds() || !(total > 0) || math.IsInf(total, 0) || len(platforms) == 0 {
		return nil
	}

	runDates := ISODates(CampaignDays(start, end))
	perPlatform := total / float64(len(platforms))
	daily := perPlatform / float64(len(runDates))

	items := make([]models.AdScheduleItem, 0, len(platforms))
	for _, p := range platforms {
		items = append(items, models.AdScheduleItem{
			Platform:    p,
			DailyBudget: daily,
			TotalBudget: perPlatform,
			RunDates:    append([]string(nil), runDates...),
		})
	}
	return items
}

// AllocateForForm builds the ad schedule of a campaign brief
func AllocateForForm(f *models.CampaignFormData, now time.Time) ([]models.AdScheduleItem, error) {
	total, err := f.TotalBudget()
	if err != nil {
		return nil, err
	}
	start, ok := f.Start()
	if !ok {
		start = now
	}
	var end *time.Time
	if e, ok := f.End(); ok {
		end = &e
	}
	return AllocateAdSchedule(f.ContentStrategy, total, f.SelectedPlatforms(), start, end), nil
}
