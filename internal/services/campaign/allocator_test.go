package campaign

import (
	"math"
	"testing"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateAdSchedulePaidTenDays(t *testing.T) {
	start := date(t, "2025-03-01")
	end := date(t, "2025-03-10")
	platforms := []models.Platform{models.PlatformFacebook, models.PlatformTikTok}

	items := AllocateAdSchedule(models.StrategyPaid, 100000, platforms, start, &end)
	require.Len(t, items, 2)
	for i, item := range items {
		assert.Equal(t, platforms[i], item.Platform)
		assert.InDelta(t, 5000, item.DailyBudget, 0.001)
		assert.InDelta(t, 50000, item.TotalBudget, 0.001)
		require.Len(t, item.RunDates, 10)
		assert.Equal(t, "2025-03-01", item.RunDates[0])
		assert.Equal(t, "2025-03-10", item.RunDates[9])
	}
}

func TestAllocateAdScheduleSumsToTotal(t *testing.T) {
	start := date(t, "2025-01-01")
	for _, n := range []int{1, 2, 3, 5} {
		for _, days := range []int{1, 7, 13, 31} {
			end := start.AddDate(0, 0, days-1)
			items := AllocateAdSchedule(models.StrategyMixed, 333333, models.Platforms[:n], start, &end)
			require.Len(t, items, n)

			sum := 0.0
			for _, item := range items {
				sum += item.TotalBudget
				assert.Len(t, item.RunDates, days)
			}
			assert.InDelta(t, 333333, sum, 0.01)
		}
	}
}

func TestAllocateAdScheduleEmpty(t *testing.T) {
	start := date(t, "2025-03-01")
	platforms := []models.Platform{models.PlatformFacebook}

	assert.Empty(t, AllocateAdSchedule(models.StrategyOrganic, 1000, platforms, start, nil))
	assert.Empty(t, AllocateAdSchedule(models.StrategyPaid, 0, platforms, start, nil))
	assert.Empty(t, AllocateAdSchedule(models.StrategyPaid, 1000, nil, start, nil))
	assert.Empty(t, AllocateAdSchedule(models.StrategyPaid, math.NaN(), platforms, start, nil))
	assert.Empty(t, AllocateAdSchedule(models.StrategyPaid, math.Inf(1), platforms, start, nil))
}

func TestAllocateForForm(t *testing.T) {
	form := &models.CampaignFormData{
		Budget:          models.BudgetCustom,
		CustomBudget:    "70000",
		Channels:        []string{"Instagram"},
		ContentStrategy: models.StrategyPaid,
		StartDate:       "2025-03-01T00:00:00.000Z",
	}
	items, err := AllocateForForm(form, date(t, "2025-01-01"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Len(t, items[0].RunDates, 7)
	assert.InDelta(t, 10000, items[0].DailyBudget, 0.001)

	for _, bad := range []string{"abc", "NaN", "Inf", "+Inf", "-Inf", "0"} {
		form.CustomBudget = bad
		_, err = AllocateForForm(form, date(t, "2025-01-01"))
		assert.ErrorIs(t, err, models.ErrInvalidBudget, bad)
	}
}
