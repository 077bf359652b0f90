package models

// PostItem is a materialized calendar entry
type PostItem struct {
	Platform     Platform `json:"platform" example:"Facebook"`
	Day          int      `json:"day" example:"0"` // zero-based offset into the campaign days
	Time         string   `json:"time" example:"10:00"`
	Content      string   `json:"content"`
	VisualPrompt string   `json:"visualPrompt"`
	Type         string   `json:"type" example:"post"` // post, carousel, video, message
	Hashtags     []string `json:"hashtags"`
	CTA          string   `json:"cta,omitempty"`
	Thumbnail    string   `json:"thumbnail"`
	PostType     PostType `json:"postType" example:"organic"`
	PostIndex    int      `json:"postIndex"`
}

// PostEdit is a free-text edit of one calendar post
type PostEdit struct {
	Platform     Platform `json:"platform" binding:"required" example:"TikTok"`
	PostIndex    int      `json:"postIndex" example:"0"`
	Content      string   `json:"content"`
	VisualPrompt string   `json:"visualPrompt,omitempty"`
	CTA          string   `json:"cta,omitempty"`
	Time         string   `json:"time,omitempty" example:"18:00"`
}

// CalendarRequest asks for the materialized calendar of a result
type CalendarRequest struct {
	Result   *CampaignResult   `json:"result" binding:"required"`
	FormData *CampaignFormData `json:"formData"`
}

// CalendarResponse lists the campaign days and the posts placed on them
type CalendarResponse struct {
	Days  []string   `json:"days"`
	Posts []PostItem `json:"posts"`
}

// UpdatePostRequest applies a calendar edit to a result
type UpdatePostRequest struct {
	Result *CampaignResult `json:"result" binding:"required"`
	Edit   PostEdit        `json:"edit" binding:"required"`
}

// AdScheduleRequest asks for the ad allocation of a brief
type AdScheduleRequest struct {
	FormData CampaignFormData `json:"formData" binding:"required"`
}
