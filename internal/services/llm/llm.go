package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/onegreenvn/campaign-generator-backend/internal/config"
)

// ErrEmptyCompletion is returned when the provider answers without any text
var ErrEmptyCompletion = errors.New("no content received from LLM")

// Generator produces a completion for a system and a user prompt
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// Options are the sampling settings shared by every provider
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// New builds the generator selected by LLM_PROVIDER
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case "", "openai":
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, Options{
			Model:       cfg.OpenAIModel,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
		}, cfg.LLMTimeout), nil
	case "gemini":
		g, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, Options{
			Model:       cfg.GeminiModel,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLMProvider)
	}
}
