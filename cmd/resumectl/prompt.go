package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/internal/llm"
)

func bindPromptFlags(cmd *cobra.Command, fields *llm.PromptFields) {
	cmd.Flags().StringVar(&fields.Name, "name", "", "Applicant name")
	cmd.Flags().StringVar(&fields.JobTitle, "job-title", "", "Target job title")
	cmd.Flags().StringVar(&fields.Summary, "summary", "", "Summary or objective")
	cmd.Flags().StringVar(&fields.Skills, "skills", "", "Skills, comma or newline separated")
	cmd.Flags().StringVar(&fields.Experience, "experience", "", "Work experience, one job per line")
	cmd.Flags().StringVar(&fields.Education, "education", "", "Education")
	cmd.Flags().StringVar(&fields.Extra, "extra", "", "Certifications, projects, languages")
}

func newPromptCmd() *cobra.Command {
	fields := &llm.PromptFields{}
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt that would be sent to the text generator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := llm.BuildResumePrompt(*fields)
			fmt.Fprintf(cmd.OutOrStdout(), "system:\n%s\n\nuser:\n%s", prompt.System, prompt.User)
			return nil
		},
	}
	bindPromptFlags(cmd, fields)
	return cmd
}
