package models

// GenerateCampaignRequest is the body of POST /api/v1/generate-campaign
type GenerateCampaignRequest struct {
	Mode             GenerationMode   `json:"mode" example:"preview"`
	Name             string           `json:"name" example:"Smart Analytics Launch"`
	Objective        string           `json:"objective" example:"Brand Awareness"`
	TargetAudience   string           `json:"target_audience" example:"SME Business Owners"`
	Platforms        []string         `json:"platforms" example:"Facebook,Instagram"`
	Budget           FlexString       `json:"budget" swaggertype:"string" example:"100000"`
	ContentStrategy  ContentStrategy  `json:"content_strategy" example:"organic"`
	PostingFrequency PostingFrequency `json:"posting_frequency" example:"daily"`
	StartDate        string           `json:"start_date,omitempty" example:"2025-03-01"`
	EndDate          string           `json:"end_date,omitempty" example:"2025-03-08"`
	CampaignFocus    string           `json:"campaign_focus,omitempty" example:"general"`
	ExistingPreview  *CampaignPreview `json:"existingPreview,omitempty"`

	// Focus context, either given directly or resolved from the catalog ids
	FocusType      string                 `json:"focus_type,omitempty" example:"product"`
	FocusData      map[string]interface{} `json:"focus_data,omitempty"`
	OrganizationID string                 `json:"organization_id,omitempty" example:"org1"`
	ProductID      string                 `json:"product_id,omitempty" example:"prod1"`
	ServiceID      string                 `json:"service_id,omitempty"`
}

// EffectiveMode defaults an empty mode to preview
func (r *GenerateCampaignRequest) EffectiveMode() GenerationMode {
	if r.Mode == "" {
		return ModePreview
	}
	return r.Mode
}

// SelectedPlatforms returns the known requested platforms, deduplicated, in request order
func (r *GenerateCampaignRequest) SelectedPlatforms() []Platform {
	return NormalizePlatforms(r.Platforms)
}

// GenerateRequestFromForm converts a campaign brief into a generation request
func GenerateRequestFromForm(name string, mode GenerationMode, f *CampaignFormData) *GenerateCampaignRequest {
	budget := FlexString(f.Budget)
	if f.Budget == BudgetCustom {
		budget = FlexString(f.CustomBudget)
	}
	focus := f.CampaignFocus
	if focus == "" {
		focus = "general"
	}
	return &GenerateCampaignRequest{
		Mode:             mode,
		Name:             name,
		Objective:        f.Objective,
		TargetAudience:   f.TargetAudience,
		Platforms:        append([]string(nil), f.Channels...),
		Budget:           budget,
		ContentStrategy:  f.ContentStrategy,
		PostingFrequency: f.PostingFrequency,
		StartDate:        f.StartDate,
		EndDate:          f.EndDate,
		CampaignFocus:    focus,
		OrganizationID:   f.OrganizationID,
		ProductID:        f.ProductID,
		ServiceID:        f.ServiceID,
	}
}
