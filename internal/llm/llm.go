package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/shared/telemetry"
)

// Prompt is the pair of messages sent to a text-generation provider.
type Prompt struct {
	System string
	User   string
}

// Generator turns a prompt into generated résumé text.
// Implementations block until the provider answers or ctx ends.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// ErrNotConfigured is returned when no provider credential is available.
var ErrNotConfigured = errors.New("text generator is not configured")

// ErrEmptyResponse is returned when a provider answers with no text.
var ErrEmptyResponse = errors.New("text generator returned no content")

// Unavailable is the generator installed when a provider cannot be built.
type Unavailable struct {
	Reason string
}

// Generate always fails with ErrNotConfigured.
func (u Unavailable) Generate(ctx context.Context, prompt Prompt) (string, error) {
	_ = ctx
	_ = prompt
	if u.Reason == "" {
		return "", ErrNotConfigured
	}
	return "", fmt.Errorf("%w: %s", ErrNotConfigured, u.Reason)
}

// Logged wraps a generator with one llm.generate log line per call.
func Logged(next Generator, provider, model string) Generator {
	return loggedGenerator{next: next, provider: provider, model: model}
}

type loggedGenerator struct {
	next     Generator
	provider string
	model    string
}

func (l loggedGenerator) Generate(ctx context.Context, prompt Prompt) (string, error) {
	start := time.Now()
	text, err := l.next.Generate(ctx, prompt)
	fields := map[string]any{
		"provider":    l.provider,
		"model":       l.model,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		telemetry.Error("llm.generate", fields)
		return "", err
	}
	fields["chars"] = len(text)
	telemetry.Info("llm.generate", fields)
	return text, nil
}
