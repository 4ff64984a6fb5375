package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"resume-builder/resume/contract"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

type renderOptions struct {
	in       string
	outDir   string
	formats  []string
	name     string
	jobTitle string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a JSON resume or generated text file to PDF and DOCX",
		Long: "Render reads a structured resume (.json) or generated plain text (any other extension) " +
			"and writes one document per requested format into the output directory.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.in, "in", "i", "", "Path to resume JSON or text file")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", ".", "Directory for rendered documents")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", []string{"pdf", "docx"}, "Output formats")
	cmd.Flags().StringVar(&opts.name, "name", "", "Applicant name for text input")
	cmd.Flags().StringVar(&opts.jobTitle, "job-title", "", "Job title for text input")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	src, err := loadSource(opts)
	if err != nil {
		return err
	}

	formats := make([]render.Format, 0, len(opts.formats))
	for _, raw := range opts.formats {
		format, err := render.ParseFormat(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid --format %q", raw)
		}
		formats = append(formats, format)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory: %s", opts.outDir)
	}

	var (
		mu      sync.Mutex
		written []string
	)
	var g errgroup.Group
	for _, format := range formats {
		format := format
		g.Go(func() error {
			doc, err := render.Compose(src, format)
			if err != nil {
				return errors.Wrapf(err, "failed to render %s", format)
			}
			path := filepath.Join(opts.outDir, doc.FileName)
			if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", path)
			}
			mu.Lock()
			written = append(written, path)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Strings(written)
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func loadSource(opts *renderOptions) (render.Source, error) {
	data, err := os.ReadFile(opts.in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input file")
	}
	if !strings.EqualFold(filepath.Ext(opts.in), ".json") {
		return render.FreeText{Name: opts.name, JobTitle: opts.jobTitle, Text: string(data)}, nil
	}

	resume, err := contract.Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid resume JSON")
	}
	if !model.ValidPortfolioLink(resume.Portfolio) {
		return nil, errors.New("invalid portfolio link: " + model.PortfolioMessage)
	}
	contract.Normalize(&resume)
	return render.Structured{Resume: resume}, nil
}
