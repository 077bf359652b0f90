package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/database"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/excel"
	"github.com/spf13/cobra"
)

var (
	resultPath   string
	exportFormat string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Materialize the post calendar of a generated campaign",
	Example: `  campaignctl posts --result campaign.json --form brief.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, form, err := loadCampaign()
		if err != nil {
			return err
		}
		days := campaign.FormDays(form, time.Now())
		end := days[len(days)-1]
		return writeJSON(models.CalendarResponse{
			Days:  campaign.ISODates(days),
			Posts: campaign.MaterializePosts(result, days[0], &end),
		})
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Allocate the ad budget of a campaign brief",
	Example: `  campaignctl schedule --form brief.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if formPath == "" {
			return fmt.Errorf("--form is required")
		}
		var form models.CampaignFormData
		if err := readJSON(formPath, &form); err != nil {
			return err
		}
		items, err := campaign.AllocateForForm(&form, time.Now())
		if err != nil {
			return err
		}
		if items == nil {
			items = []models.AdScheduleItem{}
		}
		return writeJSON(items)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a campaign as JSON, text or an Excel workbook",
	Example: `  campaignctl export --result campaign.json --format text
  campaignctl export --result campaign.json --form brief.json --format xlsx -o calendar.xlsx`,
	RunE: runExport,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo organizations, products and services",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.InitDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)
		if err := database.SeedDemoData(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Demo data seeded")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{postsCmd, exportCmd} {
		c.Flags().StringVar(&resultPath, "result", "", "Generated campaign JSON file (required)")
		c.Flags().StringVar(&formPath, "form", "", "Campaign form JSON file")
		_ = c.MarkFlagRequired("result")
	}
	scheduleCmd.Flags().StringVar(&formPath, "form", "", "Campaign form JSON file (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "json, text or xlsx")
}

// loadCampaign reads --result and the optional --form. A JSON export file is accepted as result.
func loadCampaign() (*models.CampaignResult, *models.CampaignFormData, error) {
	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", resultPath, err)
	}

	var form *models.CampaignFormData
	var result *models.CampaignResult
	if doc, err := campaign.ParseExport(data); err == nil {
		result, form = doc.Campaign, doc.FormData
	} else {
		result = &models.CampaignResult{}
		if err := readJSON(resultPath, result); err != nil {
			return nil, nil, err
		}
	}

	if formPath != "" {
		form = &models.CampaignFormData{}
		if err := readJSON(formPath, form); err != nil {
			return nil, nil, err
		}
	}
	return result, form, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	result, form, err := loadCampaign()
	if err != nil {
		return err
	}
	now := time.Now()

	var data []byte
	switch exportFormat {
	case "json":
		data, err = campaign.ExportJSON(result, form, now)
	case "text", "txt":
		var text string
		text, err = campaign.ExportText(result, now)
		data = []byte(text)
	case "xlsx":
		days := campaign.FormDays(form, now)
		end := days[len(days)-1]
		posts := campaign.MaterializePosts(result, days[0], &end)
		var buf *bytes.Buffer
		buf, err = excel.NewExcelService().BuildCalendar(posts, days, result.AdSchedule)
		if buf != nil {
			data = buf.Bytes()
		}
	default:
		return fmt.Errorf("unknown format %q (json, text or xlsx)", exportFormat)
	}
	if err != nil {
		return err
	}

	w, err := output()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(data)
	return err
}
