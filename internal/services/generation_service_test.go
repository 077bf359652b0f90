package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	system string
	user   string
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(_ context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	return f.reply, f.err
}

type loggedStage struct {
	stage, status string
}

type fakeLogger struct {
	entries []loggedStage
}

func (f *fakeLogger) Log(_, entityType, _, stage, status, _ string, _ map[string]interface{}) {
	if entityType == GenerationEntityType {
		f.entries = append(f.entries, loggedStage{stage, status})
	}
}

type fakeCatalog struct{}

func (fakeCatalog) GetOrganization(id string) (*models.Organization, error) {
	if id != "org1" {
		return nil, repository.ErrNotFound
	}
	return &models.Organization{ID: "org1", Name: "TechFlow Solutions", Industry: "Technology"}, nil
}

func (fakeCatalog) GetProduct(id string) (*models.Product, error) {
	if id != "prod1" {
		return nil, repository.ErrNotFound
	}
	return &models.Product{ID: "prod1", Name: "Smart Analytics Dashboard", Price: 15000, Features: []string{"AI insights"}}, nil
}

func (fakeCatalog) GetService(string) (*models.Service, error) {
	return nil, repository.ErrNotFound
}

func newTestGenerationService(gen *fakeGenerator, logs *fakeLogger) *GenerationService {
	var logger GenerationLogger
	if logs != nil {
		logger = logs
	}
	svc := NewGenerationService(gen, fakeCatalog{}, logger, time.Second)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestGeneratePreview(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"campaign_summary\":\"S\",\"big_idea\":\"B\",\"key_messages\":[\"k\"],\"visual_direction\":\"V\"}\n```"}
	logs := &fakeLogger{}
	svc := newTestGenerationService(gen, logs)

	g, err := svc.Generate(context.Background(), "req-1", &models.GenerateCampaignRequest{Name: "Launch", Platforms: []string{"Facebook"}})
	require.NoError(t, err)

	assert.Equal(t, "req-1", g.ID)
	assert.Equal(t, models.ModePreview, g.Mode)
	assert.NoError(t, g.ParseErr)
	assert.Equal(t, campaign.SystemPrompt, gen.system)

	preview, ok := g.Body().(*models.CampaignPreview)
	require.True(t, ok)
	assert.Equal(t, "S", preview.CampaignSummary)
	assert.Equal(t, []string{"k"}, preview.KeyMessages)

	assert.Equal(t, []loggedStage{
		{models.StageGenerationStarted, models.LogStatusInfo},
		{models.StageLLMCompleted, models.LogStatusSuccess},
		{models.StageNormalized, models.LogStatusSuccess},
	}, logs.entries)
}

func TestGenerateFullPaidAttachesAdSchedule(t *testing.T) {
	gen := &fakeGenerator{reply: "not json at all"}
	logs := &fakeLogger{}
	svc := newTestGenerationService(gen, logs)

	req := &models.GenerateCampaignRequest{
		Mode:             models.ModeFull,
		Name:             "Launch",
		Platforms:        []string{"Facebook", "TikTok"},
		Budget:           "100000",
		ContentStrategy:  models.StrategyPaid,
		PostingFrequency: models.FrequencyDaily,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-10",
	}
	g, err := svc.Generate(context.Background(), "", req)
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)

	var parseErr *campaign.ParseError
	assert.True(t, errors.As(g.ParseErr, &parseErr))

	result, ok := g.Body().(*models.CampaignResult)
	require.True(t, ok)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, 7, result.Posts[models.PlatformFacebook].Len())
	assert.Equal(t, models.PostTypeAd, result.Posts[models.PlatformTikTok].At(0).PostType)

	require.Len(t, result.AdSchedule, 2)
	assert.Equal(t, 50000.0, result.AdSchedule[0].TotalBudget)
	assert.Equal(t, 5000.0, result.AdSchedule[0].DailyBudget)
	assert.Len(t, result.AdSchedule[0].RunDates, 10)

	require.Len(t, logs.entries, 3)
	assert.Equal(t, loggedStage{models.StageNormalized, models.LogStatusWarning}, logs.entries[2])
}

func TestGenerateOrganicHasNoAdSchedule(t *testing.T) {
	svc := newTestGenerationService(&fakeGenerator{reply: "{}"}, nil)

	g, err := svc.Generate(context.Background(), "r", &models.GenerateCampaignRequest{
		Mode:      models.ModeFull,
		Platforms: []string{"Line OA"},
		Budget:    "10000",
	})
	require.NoError(t, err)
	assert.Nil(t, g.Result.AdSchedule)
	assert.Len(t, g.Result.Posts, 1)
}

func TestGenerateNonFiniteBudgetKeepsResultEncodable(t *testing.T) {
	for _, budget := range []models.FlexString{"NaN", "Inf", "-Inf"} {
		t.Run(string(budget), func(t *testing.T) {
			svc := newTestGenerationService(&fakeGenerator{reply: "{}"}, nil)

			g, err := svc.Generate(context.Background(), "r", &models.GenerateCampaignRequest{
				Mode:            models.ModeFull,
				Platforms:       []string{"Facebook"},
				Budget:          budget,
				ContentStrategy: models.StrategyMixed,
			})
			require.NoError(t, err)
			assert.Empty(t, g.Result.AdSchedule)

			_, err = json.Marshal(g.Body())
			assert.NoError(t, err)
		})
	}
}

func TestGenerateLogsUnderGenerationAndRequest(t *testing.T) {
	store := &memoryLogStore{}
	logService := NewGenerationLogService(store, NewSSEHub(), nil)
	svc := NewGenerationService(&fakeGenerator{reply: "{}"}, fakeCatalog{}, logService, time.Second)

	g, err := svc.Generate(context.Background(), "req-9", &models.GenerateCampaignRequest{Platforms: []string{"Facebook"}})
	require.NoError(t, err)
	assert.Equal(t, "generation", GenerationEntityType)

	byGeneration, err := logService.GetLogsByEntity(GenerationEntityType, g.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, byGeneration, 3)

	byRequest, err := logService.GetLogsByEntity(RequestEntityType, "req-9", 10, 0)
	require.NoError(t, err)
	assert.Len(t, byRequest, 3)
	for _, l := range byRequest {
		assert.Equal(t, GenerationEntityType, l.EntityType)
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	svc := newTestGenerationService(&fakeGenerator{}, nil)

	_, err := svc.Generate(context.Background(), "", &models.GenerateCampaignRequest{Mode: "draft"})
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = svc.Generate(context.Background(), "", &models.GenerateCampaignRequest{Mode: models.ModeFull, Platforms: []string{"MySpace"}})
	assert.ErrorIs(t, err, ErrNoPlatforms)
}

func TestGenerateLLMFailure(t *testing.T) {
	logs := &fakeLogger{}
	svc := newTestGenerationService(&fakeGenerator{err: errors.New("OpenAI API error: 429 Too Many Requests")}, logs)

	_, err := svc.Generate(context.Background(), "r", &models.GenerateCampaignRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	require.Len(t, logs.entries, 2)
	assert.Equal(t, loggedStage{models.StageGenerationFailed, models.LogStatusError}, logs.entries[1])
}

func TestGenerateResolvesProductFocus(t *testing.T) {
	gen := &fakeGenerator{reply: "{}"}
	svc := newTestGenerationService(gen, nil)

	req := &models.GenerateCampaignRequest{ProductID: "prod1", CampaignFocus: "product"}
	_, err := svc.Generate(context.Background(), "r", req)
	require.NoError(t, err)

	assert.Equal(t, "product", req.FocusType)
	assert.Equal(t, "Smart Analytics Dashboard", req.FocusData["name"])
	assert.Contains(t, gen.user, "ข้อมูลเฉพาะ product:")
	assert.Contains(t, gen.user, "Smart Analytics Dashboard")
}

func TestGenerateKeepsExplicitFocusAndIgnoresMissingRows(t *testing.T) {
	svc := newTestGenerationService(&fakeGenerator{reply: "{}"}, nil)

	explicit := &models.GenerateCampaignRequest{
		FocusType: "service",
		FocusData: map[string]interface{}{"name": "Custom"},
		ProductID: "prod1",
	}
	_, err := svc.Generate(context.Background(), "r", explicit)
	require.NoError(t, err)
	assert.Equal(t, "service", explicit.FocusType)
	assert.Equal(t, "Custom", explicit.FocusData["name"])

	missing := &models.GenerateCampaignRequest{ServiceID: "serv9", CampaignFocus: "service"}
	_, err = svc.Generate(context.Background(), "r", missing)
	require.NoError(t, err)
	assert.Empty(t, missing.FocusType)

	org := &models.GenerateCampaignRequest{OrganizationID: "org1", CampaignFocus: "general"}
	_, err = svc.Generate(context.Background(), "r", org)
	require.NoError(t, err)
	assert.Equal(t, "organization", org.FocusType)
}
