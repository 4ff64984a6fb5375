package llm

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

// SystemInstruction frames every generation request.
const SystemInstruction = "You are a helpful assistant that writes clear, concise, professional resume content. " +
	"Return sections labeled: Summary, Experience, Skills, Education, Additional (optional). " +
	"Use short bullet points under Experience focused on achievements."

//go:embed prompts/resume_text_v1.tmpl
var resumeTextV1 string

var resumeTextTemplate = template.Must(template.New("resume_text_v1").Parse(resumeTextV1))

// PromptFields are the user-entered values embedded in the prompt.
type PromptFields struct {
	Name       string
	JobTitle   string
	Summary    string
	Skills     string
	Experience string
	Education  string
	Extra      string
}

// BuildResumePrompt renders the generation prompt. Values are trimmed and
// otherwise inserted verbatim.
func BuildResumePrompt(fields PromptFields) Prompt {
	trimmed := PromptFields{
		Name:       strings.TrimSpace(fields.Name),
		JobTitle:   strings.TrimSpace(fields.JobTitle),
		Summary:    strings.TrimSpace(fields.Summary),
		Skills:     strings.TrimSpace(fields.Skills),
		Experience: strings.TrimSpace(fields.Experience),
		Education:  strings.TrimSpace(fields.Education),
		Extra:      strings.TrimSpace(fields.Extra),
	}
	var buf bytes.Buffer
	// text/template cannot fail on a struct of strings once parsed.
	_ = resumeTextTemplate.Execute(&buf, trimmed)
	return Prompt{System: SystemInstruction, User: buf.String()}
}
