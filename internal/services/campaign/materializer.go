package campaign

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

// DefaultTimes is the posting time of a platform when a post carries none
var DefaultTimes = map[models.Platform]string{
	models.PlatformFacebook:  "10:00",
	models.PlatformInstagram: "18:00",
	models.PlatformTikTok:    "20:00",
	models.PlatformYouTube:   "12:00",
	models.PlatformLineOA:    "11:00",
}

const fallbackTime = "10:00"

// DemoImages are the placeholder thumbnails of calendar posts
var DemoImages = []string{
	"/assets/demo-campaign-1.jpg",
	"/assets/demo-campaign-2.jpg",
	"/assets/demo-campaign-3.jpg",
	"/assets/demo-campaign-4.jpg",
	"/assets/demo-campaign-5.jpg",
	"/assets/demo-campaign-6.jpg",
}

const (
	tiktokVisualPrompt  = "Video script with trending audio"
	youtubeVisualPrompt = "YouTube thumbnail with engaging title overlay"

	paragraphSep = "\n\n"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

var (
	ErrPlatformNotInResult = errors.New("platform has no posts in this campaign")
	ErrPostIndexOutOfRange = errors.New("post index out of range")
)

// DemoImage picks a reproducible thumbnail from the platform name and an index
func DemoImage(platform models.Platform, index int) string {
	sum := 0
	for _, r := range string(platform) {
		sum += int(r)
	}
	i := (sum + index) % len(DemoImages)
	if i < 0 {
		i += len(DemoImages)
	}
	return DemoImages[i]
}

func defaultTime(platform models.Platform) string {
	if t, ok := DefaultTimes[platform]; ok {
		return t
	}
	return fallbackTime
}

// ExtractContent renders the display fields of a post. Platform, day, time and thumbnail are left to the caller.
func ExtractContent(platform models.Platform, post *models.PostItemData, postIndex int) models.PostItem {
	item := models.PostItem{
		Platform:  platform,
		Type:      "post",
		Hashtags:  []string{},
		PostType:  post.PostType,
		PostIndex: postIndex,
	}
	if item.PostType == "" {
		item.PostType = models.PostTypeOrganic
	}

	switch c := post.ContentFor(platform).(type) {
	case models.FacebookPost:
		item.Content = c.Caption
		item.VisualPrompt = c.VisualPrompt
		item.Hashtags = hashtags(c.Caption)
	case models.InstagramPost:
		item.Content = c.Caption
		if c.Carousel != nil {
			item.VisualPrompt = strings.Join(c.Carousel, "\n")
			item.Type = "carousel"
		} else {
			item.VisualPrompt = c.VisualPrompt
		}
		item.Hashtags = hashtags(c.Caption)
	case models.TikTokPost:
		item.Content = joinParagraphs(c.Hook, c.Script)
		item.VisualPrompt = tiktokVisualPrompt
		item.Type = "video"
	case models.YouTubePost:
		item.Content = joinParagraphs(c.Title, c.Description)
		item.VisualPrompt = youtubeVisualPrompt
		item.Type = "video"
		item.Hashtags = hashtags(c.Description)
	case models.LineOAPost:
		item.Content = c.Message
		item.CTA = c.CTA
		item.Type = "message"
	}
	return item
}

func hashtags(s string) []string {
	tags := hashtagPattern.FindAllString(s, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// MaterializePosts places every post of the result on the campaign calendar, sorted by day
func MaterializePosts(result *models.CampaignResult, start time.Time, end *time.Time) []models.PostItem {
	days := CampaignDays(start, end)
	return materialize(result, len(days))
}

func materialize(result *models.CampaignResult, numDays int) []models.PostItem {
	posts := []models.PostItem{}
	if result == nil || numDays == 0 {
		return posts
	}

	platforms := result.OrderedPlatforms()
	for position, platform := range platforms {
		data := result.Posts[platform]

		if !data.IsList() {
			dayIndex := position % numDays
			item := ExtractContent(platform, data.Single, 0)
			item.Day = dayIndex
			item.Time = defaultTime(platform)
			item.Thumbnail = DemoImage(platform, dayIndex)
			posts = append(posts, item)
			continue
		}

		for postIndex := range data.Items {
			entry := &data.Items[postIndex]
			dayIndex := postIndex % numDays
			if entry.Day != nil {
				dayIndex = *entry.Day - 1
			}
			dayIndex = max(min(dayIndex, numDays-1), 0)

			item := ExtractContent(platform, entry, postIndex)
			item.Day = dayIndex
			item.Time = entry.Time
			if item.Time == "" {
				item.Time = defaultTime(platform)
			}
			item.Thumbnail = DemoImage(platform, postIndex)
			posts = append(posts, item)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Day < posts[j].Day
	})
	return posts
}

// ApplyPostEdit writes a free-text calendar edit back into the platform-native shape of the
// addressed post. The result is modified in place.
func ApplyPostEdit(result *models.CampaignResult, edit models.PostEdit) error {
	if result == nil || result.Posts == nil {
		return ErrPlatformNotInResult
	}
	data, ok := result.Posts[edit.Platform]
	if !ok || data == nil {
		return fmt.Errorf("%w: %s", ErrPlatformNotInResult, edit.Platform)
	}
	post := data.At(edit.PostIndex)
	if post == nil {
		return fmt.Errorf("%w: %s[%d]", ErrPostIndexOutOfRange, edit.Platform, edit.PostIndex)
	}

	switch edit.Platform {
	case models.PlatformFacebook:
		post.SetContent(models.FacebookPost{Caption: edit.Content, VisualPrompt: edit.VisualPrompt})
	case models.PlatformInstagram:
		post.SetContent(models.InstagramPost{Caption: edit.Content, Carousel: nonEmptyLines(edit.VisualPrompt)})
	case models.PlatformTikTok:
		hook, script := splitFirstParagraph(edit.Content)
		post.SetContent(models.TikTokPost{Hook: hook, Script: script})
	case models.PlatformYouTube:
		title, description := splitFirstParagraph(edit.Content)
		post.SetContent(models.YouTubePost{Title: title, Description: description})
	case models.PlatformLineOA:
		post.SetContent(models.LineOAPost{Message: edit.Content, CTA: edit.CTA})
	default:
		return fmt.Errorf("%w: %s", ErrPlatformNotInResult, edit.Platform)
	}

	if edit.Time != "" {
		post.Time = edit.Time
	}
	return nil
}

// joinParagraphs is the inverse of splitFirstParagraph
func joinParagraphs(head, rest string) string {
	if rest == "" {
		return head
	}
	return head + paragraphSep + rest
}

// splitFirstParagraph cuts s at the first blank line. A separator with nothing
// after it stays in the head so joinParagraphs gives back s unchanged.
func splitFirstParagraph(s string) (string, string) {
	head, rest, found := strings.Cut(s, paragraphSep)
	if found && rest == "" {
		return s, ""
	}
	return head, rest
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
