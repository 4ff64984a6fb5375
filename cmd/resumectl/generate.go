package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-builder/internal/llm"
	"resume-builder/internal/llm/provider"
	"resume-builder/internal/shared/config"
)

func newGenerateCmd() *cobra.Command {
	fields := &llm.PromptFields{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate resume text with the configured provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(fields.Name) == "" || strings.TrimSpace(fields.JobTitle) == "" {
				return errors.New("--name and --job-title are required")
			}
			ctx := cmd.Context()
			cfg := config.Load()
			gen, ok := provider.New(ctx, cfg)
			if !ok {
				return errors.Errorf("no API key configured for provider %s", cfg.LLMProvider)
			}
			text, err := gen.Generate(ctx, llm.BuildResumePrompt(*fields))
			if err != nil {
				return errors.Wrap(err, "text generation failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	bindPromptFlags(cmd, fields)
	return cmd
}
