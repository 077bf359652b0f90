package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/onegreenvn/campaign-generator-backend/internal/services"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/llm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	genName      string
	genMode      string
	genPlatforms []string
	genBudget    string
	genStrategy  string
	genFrequency string
	genStart     string
	genEnd       string
	genObjective string
	genAudience  string
)

// generateCmd calls the configured LLM provider
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a campaign preview or full campaign",
	Long: `Generate a campaign with the LLM provider selected by LLM_PROVIDER.

The brief comes from --form (a campaign form JSON file) or from flags.
Flags override the matching form fields.`,
	Example: `  campaignctl generate --name "Smart Analytics Launch" --platforms Facebook,TikTok --budget 100000
  campaignctl generate --form brief.json --mode full --strategy paid -o campaign.json`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&formPath, "form", "", "Campaign form JSON file")
	f.StringVar(&genName, "name", "", "Campaign name")
	f.StringVar(&genMode, "mode", string(models.ModePreview), "preview or full")
	f.StringSliceVar(&genPlatforms, "platforms", nil, "Platforms (Facebook, Instagram, TikTok, YouTube, Line OA)")
	f.StringVar(&genBudget, "budget", "", "Total budget in THB")
	f.StringVar(&genStrategy, "strategy", "", "organic, paid or mixed")
	f.StringVar(&genFrequency, "frequency", "", "daily, 3-per-week or weekly")
	f.StringVar(&genStart, "start", "", "Start date (YYYY-MM-DD)")
	f.StringVar(&genEnd, "end", "", "End date (YYYY-MM-DD)")
	f.StringVar(&genObjective, "objective", "", "Campaign objective")
	f.StringVar(&genAudience, "audience", "", "Target audience")
}

func buildGenerateRequest(cmd *cobra.Command) (*models.GenerateCampaignRequest, error) {
	req := &models.GenerateCampaignRequest{}
	if formPath != "" {
		var form models.CampaignFormData
		if err := readJSON(formPath, &form); err != nil {
			return nil, err
		}
		req = models.GenerateRequestFromForm(genName, models.GenerationMode(genMode), &form)
	}

	flags := cmd.Flags()
	req.Mode = models.GenerationMode(strings.ToLower(genMode))
	if flags.Changed("name") {
		req.Name = genName
	}
	if flags.Changed("platforms") {
		req.Platforms = genPlatforms
	}
	if flags.Changed("budget") {
		req.Budget = models.FlexString(genBudget)
	}
	if flags.Changed("strategy") {
		req.ContentStrategy = models.ContentStrategy(genStrategy)
	}
	if flags.Changed("frequency") {
		req.PostingFrequency = models.PostingFrequency(genFrequency)
	}
	if flags.Changed("start") {
		req.StartDate = genStart
	}
	if flags.Changed("end") {
		req.EndDate = genEnd
	}
	if flags.Changed("objective") {
		req.Objective = genObjective
	}
	if flags.Changed("audience") {
		req.TargetAudience = genAudience
	}
	return req, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := buildGenerateRequest(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	generator, err := llm.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}

	svc := services.NewGenerationService(generator, nil, nil, cfg.LLMTimeout)
	gen, err := svc.Generate(ctx, "", req)
	if err != nil {
		return err
	}
	if gen.ParseErr != nil {
		logrus.Warnf("LLM reply was not valid JSON, fallback content used: %v", gen.ParseErr)
	}
	return writeJSON(gen.Body())
}
