package models

import "time"

// CampaignVersion is an immutable snapshot of a campaign session
type CampaignVersion struct {
	ID           string            `json:"id" example:"v_1735689600000_k3j9x0a1b"`
	Timestamp    time.Time         `json:"timestamp"`
	Label        string            `json:"label" example:"Version 1"`
	FormData     *CampaignFormData `json:"formData"`
	Preview      *CampaignPreview  `json:"preview"`
	FullCampaign *CampaignResult   `json:"fullCampaign"`
}

// SaveVersionRequest names a saved version; an empty label gets "Version N"
type SaveVersionRequest struct {
	Label string `json:"label" example:"Before price change"`
}

// SessionResponse is the API view of a campaign session
type SessionResponse struct {
	ID               string            `json:"id"`
	FormData         *CampaignFormData `json:"formData"`
	Preview          *CampaignPreview  `json:"preview"`
	FullCampaign     *CampaignResult   `json:"fullCampaign"`
	Versions         []CampaignVersion `json:"versions"`
	CurrentVersionID string            `json:"currentVersionId,omitempty"`
	CanUndo          bool              `json:"canUndo"`
	UndoDepth        int               `json:"undoDepth"`
}

// ExportRequest is the body of the export endpoints
type ExportRequest struct {
	Campaign *CampaignResult   `json:"campaign" binding:"required"`
	FormData *CampaignFormData `json:"formData"`
}

// ExportUploadResponse is returned when an export is stored in object storage
type ExportUploadResponse struct {
	Filename string `json:"filename" example:"campaign-1735689600000.json"`
	URL      string `json:"url"`
}
