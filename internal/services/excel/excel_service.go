package excel

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	CalendarSheet   = "Calendar"
	AdScheduleSheet = "Ad Schedule"
)

var calendarColumns = []string{
	"date", "day", "time", "platform", "post_type", "type",
	"content", "visual_prompt", "hashtags", "cta",
}

var adScheduleColumns = []string{
	"platform", "daily_budget", "total_budget", "run_days", "first_date", "last_date",
}

// Service renders campaign content calendars as XLSX workbooks
type Service struct{}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{}
}

// BuildCalendar writes the materialized posts and the ad schedule into a workbook
func (s *Service) BuildCalendar(posts []models.PostItem, days []time.Time, schedule []models.AdScheduleItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), CalendarSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(AdScheduleSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(0)

	if err := writeCalendar(f, posts, days); err != nil {
		return nil, err
	}
	if err := writeAdSchedule(f, schedule); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf, nil
}

func writeCalendar(f *excelize.File, posts []models.PostItem, days []time.Time) error {
	writeHeader(f, CalendarSheet, calendarColumns)

	for i, col := range calendarColumns {
		letter := columnToLetter(i + 1)
		width := 15.0
		switch col {
		case "platform", "post_type", "type":
			width = 12.0
		case "content", "visual_prompt":
			width = 60.0
		case "hashtags", "cta":
			width = 25.0
		}
		f.SetColWidth(CalendarSheet, letter, letter, width)
	}

	boostedStyle, _ := f.NewStyle(fillStyle("B4C6E7")) // Light blue
	adStyle, _ := f.NewStyle(fillStyle("FFC000"))      // Orange
	wrapStyle, _ := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})

	if len(posts) == 0 {
		f.SetCellValue(CalendarSheet, "A2", "no posts in this campaign")
		return nil
	}

	last := columnToLetter(len(calendarColumns))
	for j, post := range posts {
		row := j + 2
		date := ""
		if post.Day >= 0 && post.Day < len(days) {
			date = days[post.Day].Format("2006-01-02")
		}

		values := []interface{}{
			date, post.Day + 1, post.Time, string(post.Platform), string(post.PostType), post.Type,
			post.Content, post.VisualPrompt, strings.Join(post.Hashtags, " "), post.CTA,
		}
		for i, v := range values {
			f.SetCellValue(CalendarSheet, cell(i+1, row), v)
		}

		switch post.PostType {
		case models.PostTypeBoosted:
			f.SetCellStyle(CalendarSheet, cell(1, row), last+strconv.Itoa(row), boostedStyle)
		case models.PostTypeAd:
			f.SetCellStyle(CalendarSheet, cell(1, row), last+strconv.Itoa(row), adStyle)
		default:
			f.SetCellStyle(CalendarSheet, cell(7, row), cell(8, row), wrapStyle)
		}
	}
	return nil
}

func writeAdSchedule(f *excelize.File, schedule []models.AdScheduleItem) error {
	writeHeader(f, AdScheduleSheet, adScheduleColumns)
	for i := range adScheduleColumns {
		letter := columnToLetter(i + 1)
		f.SetColWidth(AdScheduleSheet, letter, letter, 18.0)
	}

	if len(schedule) == 0 {
		f.SetCellValue(AdScheduleSheet, "A2", "no ad schedule (organic campaign)")
		return nil
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}
	for j, item := range schedule {
		row := j + 2
		first, lastDate := "", ""
		if n := len(item.RunDates); n > 0 {
			first, lastDate = item.RunDates[0], item.RunDates[n-1]
		}
		values := []interface{}{
			string(item.Platform), item.DailyBudget, item.TotalBudget, len(item.RunDates), first, lastDate,
		}
		for i, v := range values {
			f.SetCellValue(AdScheduleSheet, cell(i+1, row), v)
		}
		f.SetCellStyle(AdScheduleSheet, cell(2, row), cell(3, row), money)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, columns []string) {
	for i, col := range columns {
		f.SetCellValue(sheet, cell(i+1, 1), col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", cell(len(columns), 1), headerStyle)
	}
}

func fillStyle(color string) *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color},
			Pattern: 1,
		},
	}
}

func cell(col, row int) string {
	return columnToLetter(col) + strconv.Itoa(row)
}

// columnToLetter converts a 1-based column number to its letter (1 → A, 27 → AA)
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
