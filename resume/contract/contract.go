package contract

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/resume/model"
)

const (
	PlaceholderName     = "Applicant"
	PlaceholderJobTitle = "Job Title"
)

//go:embed resume_input.schema.json
var resumeInputSchema string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// FieldError is a single shape problem in a JSON body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ShapeError reports a JSON body whose values have the wrong types.
type ShapeError struct {
	Fields []FieldError
}

func (e ShapeError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid resume body: " + strings.Join(parts, "; ")
}

// Decode checks a JSON body against the ResumeInput schema and decodes it.
// Unknown keys and missing keys are accepted; mistyped values are not.
func Decode(data []byte) (model.ResumeInput, error) {
	var resume model.ResumeInput
	if err := CheckShape(data); err != nil {
		return resume, err
	}
	if err := json.Unmarshal(data, &resume); err != nil {
		return resume, fmt.Errorf("decode resume body: %w", err)
	}
	return resume, nil
}

// CheckShape validates data against the embedded JSON schema.
func CheckShape(data []byte) error {
	s, err := loadSchema()
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return ShapeError{Fields: []FieldError{{Field: "(root)", Message: "body is not valid JSON"}}}
	}
	if result.Valid() {
		return nil
	}
	fields := make([]FieldError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		fields = append(fields, FieldError{Field: re.Field(), Message: re.Description()})
	}
	return ShapeError{Fields: fields}
}

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeInputSchema))
		if schemaErr != nil {
			schemaErr = fmt.Errorf("load resume schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Normalize trims the identity fields and applies placeholders for a missing
// name or job title. Lists are left untouched.
func Normalize(resume *model.ResumeInput) {
	resume.Name = withPlaceholder(resume.Name, PlaceholderName)
	resume.JobTitle = withPlaceholder(resume.JobTitle, PlaceholderJobTitle)
	resume.Phone = strings.TrimSpace(resume.Phone)
	resume.Email = strings.TrimSpace(resume.Email)
	resume.Portfolio = strings.TrimSpace(resume.Portfolio)
	resume.Summary = strings.TrimSpace(resume.Summary)
}

// DisplayName returns the trimmed name or the placeholder.
func DisplayName(name string) string {
	return withPlaceholder(name, PlaceholderName)
}

// DisplayJobTitle returns the trimmed job title or the placeholder.
func DisplayJobTitle(title string) string {
	return withPlaceholder(title, PlaceholderJobTitle)
}

func withPlaceholder(value, placeholder string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return placeholder
}
