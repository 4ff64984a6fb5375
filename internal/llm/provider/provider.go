package provider

import (
	"context"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/llm/anthropic"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/llm/openai"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/telemetry"
)

// New builds the generator selected by cfg. A missing credential or a
// construction failure yields llm.Unavailable instead of an error so the
// server can still start and render documents.
func New(ctx context.Context, cfg config.Config) (llm.Generator, bool) {
	if strings.TrimSpace(cfg.APIKey()) == "" {
		telemetry.Info("llm.unconfigured", map[string]any{"provider": cfg.LLMProvider})
		return llm.Unavailable{Reason: "no API key for provider " + cfg.LLMProvider}, false
	}

	var (
		gen llm.Generator
		err error
	)
	switch cfg.LLMProvider {
	case "gemini":
		gen, err = gemini.NewClient(ctx, gemini.Options{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.LLMModel,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
		})
	case "anthropic":
		gen, err = anthropic.NewClient(anthropic.Options{
			APIKey:      cfg.AnthropicAPIKey,
			Model:       cfg.LLMModel,
			Timeout:     cfg.LLMTimeout,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
		})
	default:
		gen, err = openai.NewClient(openai.Options{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.LLMModel,
			Timeout:     cfg.LLMTimeout,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
		})
	}
	if err != nil {
		telemetry.Error("llm.init_failed", map[string]any{"provider": cfg.LLMProvider, "error": err.Error()})
		return llm.Unavailable{Reason: err.Error()}, false
	}
	return llm.Logged(gen, cfg.LLMProvider, cfg.LLMModel), true
}
