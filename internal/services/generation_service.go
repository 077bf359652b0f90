package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/llm"
	"github.com/sirupsen/logrus"
)

// GenerationEntityType is the entity type of logs written by a generation
const GenerationEntityType = "generation"

var (
	ErrInvalidMode = errors.New("mode must be preview or full")
	ErrNoPlatforms = errors.New("at least one supported platform is required for a full campaign")
)

// FocusSource looks up the catalog rows a campaign can focus on; implemented by CatalogService
type FocusSource interface {
	GetOrganization(id string) (*models.Organization, error)
	GetProduct(id string) (*models.Product, error)
	GetService(id string) (*models.Service, error)
}

// GenerationLogger records generation progress; implemented by GenerationLogService
type GenerationLogger interface {
	Log(requestID, entityType, entityID, stage, status, message string, metadata map[string]interface{})
}

// Generation is the outcome of one generation request
type Generation struct {
	ID     string
	Mode   models.GenerationMode
	Result *models.CampaignResult
	// ParseErr is set when the LLM reply was unusable and fallback content was returned
	ParseErr error
}

// Body is the client-facing response: the bare preview or the full result
func (g *Generation) Body() interface{} {
	if g.Mode == models.ModePreview {
		return &g.Result.CampaignPreview
	}
	return g.Result
}

type GenerationService struct {
	generator llm.Generator
	focus     FocusSource
	logs      GenerationLogger
	timeout   time.Duration
	now       func() time.Time
}

// NewGenerationService builds the generation pipeline. focus and logs may be nil.
func NewGenerationService(generator llm.Generator, focus FocusSource, logs GenerationLogger, timeout time.Duration) *GenerationService {
	return &GenerationService{
		generator: generator,
		focus:     focus,
		logs:      logs,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Generate runs prompt building, the LLM call and normalization for one request.
// Only invalid input and LLM failures return an error; malformed replies are repaired.
func (s *GenerationService) Generate(ctx context.Context, requestID string, req *models.GenerateCampaignRequest) (*Generation, error) {
	mode := req.EffectiveMode()
	if mode != models.ModePreview && mode != models.ModeFull {
		return nil, ErrInvalidMode
	}
	platforms := req.SelectedPlatforms()
	if mode == models.ModeFull && len(platforms) == 0 {
		return nil, ErrNoPlatforms
	}

	id := requestID
	if id == "" {
		id = uuid.New().String()
	}
	meta := map[string]interface{}{
		"mode":      mode,
		"provider":  s.generator.Name(),
		"platforms": platforms,
	}

	s.resolveFocus(req)
	now := s.now()
	prompt := campaign.BuildPrompt(req, now)
	s.log(requestID, id, models.StageGenerationStarted, models.LogStatusInfo, "Campaign generation started", meta)

	started := time.Now()
	llmCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		llmCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	text, err := s.generator.Generate(llmCtx, campaign.SystemPrompt, prompt)
	meta["duration_ms"] = time.Since(started).Milliseconds()
	if err != nil {
		meta["error"] = err.Error()
		s.log(requestID, id, models.StageGenerationFailed, models.LogStatusError, "LLM request failed", meta)
		return nil, fmt.Errorf("failed to generate campaign: %w", err)
	}
	s.log(requestID, id, models.StageLLMCompleted, models.LogStatusSuccess, "LLM reply received", meta)

	result, parseErr := campaign.Normalize(text, req, now)
	if mode == models.ModeFull && req.ContentStrategy.RunsAds() {
		total, _ := req.Budget.Float()
		window := campaign.ResolveWindow(req.StartDate, req.EndDate, now)
		result.AdSchedule = campaign.AllocateAdSchedule(req.ContentStrategy, total, platforms, window.Start, &window.End)
	}

	status, message := models.LogStatusSuccess, "Campaign normalized"
	if parseErr != nil {
		status, message = models.LogStatusWarning, "LLM reply was not valid JSON, fallback content used"
		meta["parse_error"] = parseErr.Error()
	}
	s.log(requestID, id, models.StageNormalized, status, message, meta)

	return &Generation{ID: id, Mode: mode, Result: result, ParseErr: parseErr}, nil
}

func (s *GenerationService) log(requestID, id, stage, status, message string, metadata map[string]interface{}) {
	if s.logs == nil {
		return
	}
	s.logs.Log(requestID, GenerationEntityType, id, stage, status, message, metadata)
}

// resolveFocus fills focus_type/focus_data from the catalog ids when the request
// does not carry them. Lookup failures leave the request unfocused.
func (s *GenerationService) resolveFocus(req *models.GenerateCampaignRequest) {
	if s.focus == nil || (req.FocusType != "" && len(req.FocusData) > 0) {
		return
	}

	focus := req.CampaignFocus
	if focus == "" {
		switch {
		case req.ProductID != "":
			focus = "product"
		case req.ServiceID != "":
			focus = "service"
		}
	}

	var (
		focusType string
		data      map[string]interface{}
		err       error
	)
	switch {
	case focus == "product" && req.ProductID != "":
		focusType = "product"
		var p *models.Product
		if p, err = s.focus.GetProduct(req.ProductID); err == nil {
			data = productFocus(p)
		}
	case focus == "service" && req.ServiceID != "":
		focusType = "service"
		var sv *models.Service
		if sv, err = s.focus.GetService(req.ServiceID); err == nil {
			data = serviceFocus(sv)
		}
	case req.OrganizationID != "":
		focusType = "organization"
		var o *models.Organization
		if o, err = s.focus.GetOrganization(req.OrganizationID); err == nil {
			data = map[string]interface{}{
				"name":        o.Name,
				"industry":    o.Industry,
				"description": o.Description,
			}
		}
	default:
		return
	}

	if err != nil {
		logrus.WithError(err).WithField("focus_type", focusType).Warn("Failed to resolve campaign focus, generating without it")
		return
	}
	req.FocusType = focusType
	req.FocusData = data
}

func productFocus(p *models.Product) map[string]interface{} {
	return map[string]interface{}{
		"name":            p.Name,
		"description":     p.Description,
		"price":           p.Price,
		"category":        p.Category,
		"target_audience": p.TargetAudience,
		"features":        []string(p.Features),
	}
}

func serviceFocus(s *models.Service) map[string]interface{} {
	return map[string]interface{}{
		"name":            s.Name,
		"description":     s.Description,
		"price":           s.Price,
		"duration":        s.Duration,
		"target_audience": s.TargetAudience,
		"features":        []string(s.Features),
	}
}
