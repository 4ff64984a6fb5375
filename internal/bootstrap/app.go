package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
	"resume-builder/internal/llm/provider"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/flash"
	"resume-builder/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Generator     llm.Generator
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// Build wires the generator, services and router for cfg. A missing
// generator credential is not an error.
func Build(ctx context.Context, cfg config.Config) *App {
	gen, configured := provider.New(ctx, cfg)
	return BuildWithGenerator(cfg, gen, configured)
}

// BuildWithGenerator wires the app around an explicit generator.
func BuildWithGenerator(cfg config.Config, gen llm.Generator, configured bool) *App {
	svc := resumes.NewService(gen)
	handler := resumes.NewHandler(svc, flash.NewStore(cfg.SecretKey, cfg.Env == "production"))
	healthSvc := health.NewService(cfg.LLMProvider, configured)

	return &App{
		Config:        cfg,
		Generator:     gen,
		ResumeService: svc,
		ResumeHandler: handler,
		Health:        healthSvc,
		Router: server.NewRouter(server.RouterDeps{
			Config:        cfg,
			ResumeHandler: handler,
			Health:        healthSvc,
		}),
	}
}
