package resumes

import (
	"strings"
	"time"

	"resume-builder/internal/llm"
)

// GenerateRequest is the generation form, also accepted as JSON.
type GenerateRequest struct {
	Name       string `form:"name" json:"name" validate:"required"`
	JobTitle   string `form:"job_title" json:"jobTitle" validate:"required"`
	Summary    string `form:"summary" json:"summary"`
	Skills     string `form:"skills" json:"skills"`
	Experience string `form:"experience" json:"experience"`
	Education  string `form:"education" json:"education"`
	Extra      string `form:"extra" json:"extra"`
	Portfolio  string `form:"portfolio" json:"portfolio" validate:"omitempty,portfolio"`
}

func (r *GenerateRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.Portfolio = strings.TrimSpace(r.Portfolio)
}

func (r GenerateRequest) promptFields() llm.PromptFields {
	return llm.PromptFields{
		Name:       r.Name,
		JobTitle:   r.JobTitle,
		Summary:    r.Summary,
		Skills:     r.Skills,
		Experience: r.Experience,
		Education:  r.Education,
		Extra:      r.Extra,
	}
}

// DownloadForm is the free-text download form posted from the result page.
type DownloadForm struct {
	Name       string `form:"name"`
	JobTitle   string `form:"job_title"`
	ResumeText string `form:"resume_text"`
}

// Generated is the outcome of a successful generation.
type Generated struct {
	Name        string    `json:"name"`
	JobTitle    string    `json:"jobTitle"`
	ResumeText  string    `json:"resumeText"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// GeneratedAtLabel formats the timestamp shown on the result page.
func (g Generated) GeneratedAtLabel() string {
	return g.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC")
}
