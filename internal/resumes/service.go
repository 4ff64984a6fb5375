package resumes

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/metrics"
	"resume-builder/resume/contract"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// Service validates input, calls the generator and composes documents.
type Service struct {
	Generator llm.Generator
	validate  *validator.Validate
	now       func() time.Time
}

// NewService constructs a Service around gen.
func NewService(gen llm.Generator) *Service {
	return &Service{
		Generator: gen,
		validate:  model.NewValidator(),
		now:       time.Now,
	}
}

// Generate validates req and asks the generator for résumé text. Invalid
// input returns *ValidationError without calling the generator.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Generated, error) {
	req.normalize()
	if err := s.validateStruct(req); err != nil {
		metrics.IncValidationRejected()
		return Generated{}, err
	}

	metrics.IncGenerationStarted()
	start := time.Now()
	text, err := s.Generator.Generate(ctx, llm.BuildResumePrompt(req.promptFields()))
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncGenerationFailed()
		return Generated{}, &ExternalServiceError{Err: err}
	}
	metrics.IncGenerationCompleted()

	return Generated{
		Name:        req.Name,
		JobTitle:    req.JobTitle,
		ResumeText:  text,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// ComposeText renders generated free text.
func (s *Service) ComposeText(form DownloadForm, format render.Format) (render.Document, error) {
	return s.compose(render.FreeText{Name: form.Name, JobTitle: form.JobTitle, Text: form.ResumeText}, format)
}

// ComposeResume validates and renders a structured résumé.
func (s *Service) ComposeResume(resume model.ResumeInput, format render.Format) (render.Document, error) {
	contract.Normalize(&resume)
	if err := s.validateStruct(resume); err != nil {
		metrics.IncValidationRejected()
		return render.Document{}, err
	}
	return s.compose(render.Structured{Resume: resume}, format)
}

func (s *Service) compose(src render.Source, format render.Format) (render.Document, error) {
	doc, err := render.Compose(src, format)
	if err != nil {
		return render.Document{}, err
	}
	metrics.IncDocumentRendered(string(format))
	return doc, nil
}

func (s *Service) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fieldName(fe), Message: messageFor(fe)})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		return "name"
	case "JobTitle":
		return "jobTitle"
	case "Portfolio":
		return "portfolio"
	default:
		return fe.Field()
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MissingRequiredMessage
	case "portfolio":
		return "Invalid portfolio link: " + model.PortfolioMessage + "."
	default:
		return fe.Field() + " is invalid"
	}
}
