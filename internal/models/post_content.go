package models

// PostContent is the platform-specific body of a post. Each platform has exactly one variant.
type PostContent interface {
	Platform() Platform
}

type FacebookPost struct {
	Caption      string
	VisualPrompt string
}

type InstagramPost struct {
	Caption      string
	VisualPrompt string
	Carousel     []string
}

type TikTokPost struct {
	Hook   string
	Script string
}

type YouTubePost struct {
	Title       string
	Description string
}

type LineOAPost struct {
	Message string
	CTA     string
}

func (FacebookPost) Platform() Platform  { return PlatformFacebook }
func (InstagramPost) Platform() Platform { return PlatformInstagram }
func (TikTokPost) Platform() Platform    { return PlatformTikTok }
func (YouTubePost) Platform() Platform   { return PlatformYouTube }
func (LineOAPost) Platform() Platform    { return PlatformLineOA }

// ContentFor reads the variant of the given platform out of the wire shape.
// Unknown platforms yield nil.
func (d *PostItemData) ContentFor(platform Platform) PostContent {
	switch platform {
	case PlatformFacebook:
		return FacebookPost{Caption: d.Caption, VisualPrompt: d.VisualPrompt}
	case PlatformInstagram:
		return InstagramPost{Caption: d.Caption, VisualPrompt: d.VisualPrompt, Carousel: d.Carousel}
	case PlatformTikTok:
		return TikTokPost{Hook: d.Hook, Script: d.Script}
	case PlatformYouTube:
		return YouTubePost{Title: d.Title, Description: d.Description}
	case PlatformLineOA:
		return LineOAPost{Message: d.Message, CTA: d.CTA}
	}
	return nil
}

// SetContent replaces the content fields with the given variant, keeping day, time and postType
func (d *PostItemData) SetContent(c PostContent) {
	d.Caption, d.VisualPrompt, d.Carousel = "", "", nil
	d.Hook, d.Script = "", ""
	d.Title, d.Description = "", ""
	d.Message, d.CTA = "", ""

	switch v := c.(type) {
	case FacebookPost:
		d.Caption, d.VisualPrompt = v.Caption, v.VisualPrompt
	case InstagramPost:
		d.Caption, d.VisualPrompt = v.Caption, v.VisualPrompt
		if len(v.Carousel) > 0 {
			d.Carousel = append([]string(nil), v.Carousel...)
		}
	case TikTokPost:
		d.Hook, d.Script = v.Hook, v.Script
	case YouTubePost:
		d.Title, d.Description = v.Title, v.Description
	case LineOAPost:
		d.Message, d.CTA = v.Message, v.CTA
	}
}
