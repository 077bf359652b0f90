package campaign

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
)

// MaxUndoDepth is the number of auto-saved snapshots a session keeps
const MaxUndoDepth = 10

const (
	autoSaveLabel = "Auto-save"
	base36        = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var ErrVersionNotFound = errors.New("version not found")

// Session is the working state of one campaign being edited: the brief, the generated
// content, the saved versions and a bounded undo history.
type Session struct {
	ID               string                   `json:"id"`
	FormData         *models.CampaignFormData `json:"formData"`
	Preview          *models.CampaignPreview  `json:"preview"`
	FullCampaign     *models.CampaignResult   `json:"fullCampaign"`
	Versions         []models.CampaignVersion `json:"versions"`
	CurrentVersionID string                   `json:"currentVersionId,omitempty"`
	UndoStack        []models.CampaignVersion `json:"undoStack"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

// NewSession creates an empty session
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Versions:  []models.CampaignVersion{},
		UndoStack: []models.CampaignVersion{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewVersionID returns an id of the form v_<unix millis>_<9 base36 chars>
func NewVersionID(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return fmt.Sprintf("v_%d_%s", now.UnixMilli(), b.String())
}

func (s *Session) hasState() bool {
	return s.FormData != nil || s.Preview != nil || s.FullCampaign != nil
}

func (s *Session) snapshot(label string) models.CampaignVersion {
	now := time.Now()
	return models.CampaignVersion{
		ID:           NewVersionID(now),
		Timestamp:    now,
		Label:        label,
		FormData:     s.FormData.Clone(),
		Preview:      s.Preview.Clone(),
		FullCampaign: s.FullCampaign.Clone(),
	}
}

func (s *Session) pushUndo() {
	if !s.hasState() {
		return
	}
	s.UndoStack = append(s.UndoStack, s.snapshot(autoSaveLabel))
	if len(s.UndoStack) > MaxUndoDepth {
		s.UndoStack = append([]models.CampaignVersion(nil), s.UndoStack[len(s.UndoStack)-MaxUndoDepth:]...)
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}

// SetFormData replaces the brief, auto-saving the previous state
func (s *Session) SetFormData(f *models.CampaignFormData) {
	s.pushUndo()
	s.FormData = f.Clone()
	s.touch()
}

// SetPreview replaces the preview, auto-saving the previous state
func (s *Session) SetPreview(p *models.CampaignPreview) {
	s.pushUndo()
	s.Preview = p.Clone()
	s.touch()
}

// SetFullCampaign replaces the full campaign, auto-saving the previous state
func (s *Session) SetFullCampaign(r *models.CampaignResult) {
	s.pushUndo()
	s.FullCampaign = r.Clone()
	s.touch()
}

// SaveVersion stores the current state as a named version and makes it current.
// An empty label becomes "Version N".
func (s *Session) SaveVersion(label string) models.CampaignVersion {
	if strings.TrimSpace(label) == "" {
		label = fmt.Sprintf("Version %d", len(s.Versions)+1)
	}
	return s.addVersion(label)
}

// Duplicate stores a copy of the current state as a new version
func (s *Session) Duplicate() models.CampaignVersion {
	return s.addVersion(fmt.Sprintf("Copy - Version %d", len(s.Versions)+1))
}

func (s *Session) addVersion(label string) models.CampaignVersion {
	v := s.snapshot(label)
	s.Versions = append(s.Versions, v)
	s.CurrentVersionID = v.ID
	s.touch()
	return v
}

// SwitchToVersion restores a saved version, auto-saving the current state first
func (s *Session) SwitchToVersion(id string) error {
	var target *models.CampaignVersion
	for i := range s.Versions {
		if s.Versions[i].ID == id {
			target = &s.Versions[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: %s", ErrVersionNotFound, id)
	}

	s.pushUndo()
	s.FormData = target.FormData.Clone()
	s.Preview = target.Preview.Clone()
	s.FullCampaign = target.FullCampaign.Clone()
	s.CurrentVersionID = id
	s.touch()
	return nil
}

// Undo restores the latest auto-saved snapshot. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.UndoStack) == 0 {
		return false
	}
	last := s.UndoStack[len(s.UndoStack)-1]
	s.UndoStack = s.UndoStack[:len(s.UndoStack)-1]

	s.FormData = last.FormData
	s.Preview = last.Preview
	s.FullCampaign = last.FullCampaign
	s.touch()
	return true
}

// CanUndo reports whether an auto-saved snapshot exists
func (s *Session) CanUndo() bool {
	return len(s.UndoStack) > 0
}

// Reset clears the session content and its history
func (s *Session) Reset() {
	s.FormData = nil
	s.Preview = nil
	s.FullCampaign = nil
	s.Versions = []models.CampaignVersion{}
	s.CurrentVersionID = ""
	s.UndoStack = []models.CampaignVersion{}
	s.touch()
}

// Response is the API view of the session
func (s *Session) Response() models.SessionResponse {
	versions := s.Versions
	if versions == nil {
		versions = []models.CampaignVersion{}
	}
	return models.SessionResponse{
		ID:               s.ID,
		FormData:         s.FormData,
		Preview:          s.Preview,
		FullCampaign:     s.FullCampaign,
		Versions:         versions,
		CurrentVersionID: s.CurrentVersionID,
		CanUndo:          s.CanUndo(),
		UndoDepth:        len(s.UndoStack),
	}
}
