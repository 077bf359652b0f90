package campaign

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

// ExportVersion is written into every JSON export
const ExportVersion = "1.0"

const isoMillis = "2006-01-02T15:04:05.000Z"

var ErrEmptyExport = errors.New("export has no campaign")

// ExportDocument is the JSON export file
type ExportDocument struct {
	Campaign      *models.CampaignResult   `json:"campaign"`
	GeneratedAt   string                   `json:"generatedAt"`
	FormData      *models.CampaignFormData `json:"formData"`
	ExportVersion string                   `json:"exportVersion"`
}

// ExportFilename names an export file after the current time in milliseconds
func ExportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("campaign-%d.%s", now.UnixMilli(), ext)
}

// ExportJSON renders the campaign and its brief as an indented JSON document
func ExportJSON(result *models.CampaignResult, form *models.CampaignFormData, now time.Time) ([]byte, error) {
	if result == nil {
		return nil, ErrEmptyExport
	}
	doc := ExportDocument{
		Campaign:      result,
		GeneratedAt:   now.UTC().Format(isoMillis),
		FormData:      form,
		ExportVersion: ExportVersion,
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ParseExport reads a JSON export back
func ParseExport(data []byte) (*ExportDocument, error) {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if doc.Campaign == nil {
		return nil, ErrEmptyExport
	}
	return &doc, nil
}

// ExportText renders the plain-text campaign export
func ExportText(result *models.CampaignResult, now time.Time) (string, error) {
	if result == nil {
		return "", ErrEmptyExport
	}
	heavy := strings.Repeat("=", 50)
	light := strings.Repeat("-", 30)

	var b strings.Builder
	fmt.Fprintf(&b, "CAMPAIGN EXPORT\n%s\n\n", heavy)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.UTC().Format(isoMillis))

	fmt.Fprintf(&b, "CAMPAIGN SUMMARY\n%s\n%s\n\n", light, result.CampaignSummary)
	fmt.Fprintf(&b, "BIG IDEA\n%s\n%s\n\n", light, result.BigIdea)

	fmt.Fprintf(&b, "KEY MESSAGES\n%s\n", light)
	for i, msg := range result.KeyMessages {
		fmt.Fprintf(&b, "%d. %s\n", i+1, msg)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "VISUAL DIRECTION\n%s\n%s\n\n", light, result.VisualDirection)

	fmt.Fprintf(&b, "PLATFORM CONTENT\n%s\n\n", heavy)
	for _, platform := range result.OrderedPlatforms() {
		posts := result.Posts[platform]
		fmt.Fprintf(&b, "[%s]\n%s\n", strings.ToUpper(string(platform)), light)
		for i := 0; i < posts.Len(); i++ {
			post := posts.At(i)
			if posts.Len() > 1 {
				fmt.Fprintf(&b, "Post %d", i+1)
				if post.Day != nil {
					fmt.Fprintf(&b, " (Day %d)", *post.Day)
				}
				b.WriteString("\n")
			}
			item := ExtractContent(platform, post, i)
			fmt.Fprintf(&b, "Content:\n%s\n\n", item.Content)
			fmt.Fprintf(&b, "Visual Prompt:\n%s\n\n", item.VisualPrompt)
		}
	}
	return b.String(), nil
}
