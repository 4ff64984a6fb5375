package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-builder/internal/shared/telemetry"
)

const devSecretKey = "change-me"

// ErrDefaultSecret is returned by Validate when production would sign flash
// cookies with the public development key.
var ErrDefaultSecret = errors.New("SECRET_KEY must be set in production")

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	SecretKey       string
	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	GeminiAPIKey    string
	AnthropicAPIKey string
	LLMTimeout      time.Duration
	LLMTemperature  float64
	LLMMaxTokens    int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary key lookup.
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(key, def string) string {
		if val, ok := lookup(key); ok && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
		return def
	}

	env := normalizeEnv(get("ENV", "dev"))
	secret := get("SECRET_KEY", get("FLASK_SECRET", ""))
	if secret == "" {
		if env == "production" {
			telemetry.Error("config.secret_missing", map[string]any{"env": env})
		} else {
			telemetry.Info("config.secret_default", map[string]any{"env": env})
		}
		secret = devSecretKey
	}

	provider := normalizeProvider(get("LLM_PROVIDER", "openai"))
	return Config{
		Port:            get("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(get("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		SecretKey:       secret,
		LLMProvider:     provider,
		LLMModel:        get("LLM_MODEL", DefaultModel(provider)),
		OpenAIAPIKey:    get("OPENAI_API_KEY", ""),
		GeminiAPIKey:    get("GEMINI_API_KEY", ""),
		AnthropicAPIKey: get("ANTHROPIC_API_KEY", ""),
		LLMTimeout:      time.Duration(parsePositiveInt(get("LLM_TIMEOUT_SECONDS", ""), 120)) * time.Second,
		LLMTemperature:  parseFloat(get("LLM_TEMPERATURE", ""), 0.2),
		LLMMaxTokens:    parsePositiveInt(get("LLM_MAX_TOKENS", ""), 800),
	}
}

// DefaultModel returns the model used when LLM_MODEL is unset.
func DefaultModel(provider string) string {
	switch provider {
	case "gemini":
		return "gemini-1.5-flash"
	case "anthropic":
		return "claude-3-5-haiku-latest"
	default:
		return "gpt-4"
	}
}

// Validate reports settings the server must not start with.
func (c Config) Validate() error {
	if c.Env == "production" && c.SecretKey == devSecretKey {
		return ErrDefaultSecret
	}
	return nil
}

// APIKey returns the key for the selected provider.
func (c Config) APIKey() string {
	switch c.LLMProvider {
	case "gemini":
		return c.GeminiAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	default:
		return c.OpenAIAPIKey
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "google":
		return "gemini"
	case "anthropic", "claude":
		return "anthropic"
	default:
		return "openai"
	}
}

func parsePositiveInt(raw string, def int) int {
	if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
		return parsed
	}
	return def
}

func parseFloat(raw string, def float64) float64 {
	if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 {
		return parsed
	}
	return def
}
