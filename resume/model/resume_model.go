package model

import (
	"strings"
)

// ResumeInput is the structured résumé record accepted by the download endpoints.
type ResumeInput struct {
	Name           string          `json:"name"`
	JobTitle       string          `json:"jobTitle"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Portfolio      string          `json:"portfolio" validate:"omitempty,portfolio"`
	Address        []string        `json:"address"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Skills         []string        `json:"skills"`
	Languages      []Language      `json:"languages"`
	Extras         []Extra         `json:"extras"`
}

// Experience represents a work history entry.
type Experience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Achievements []string `json:"achievements"`
}

// Education represents an education entry.
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Certification represents a certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Language is a spoken language with a proficiency label.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Extra is a free-form additional entry such as an award or volunteer role.
type Extra struct {
	Description string `json:"description"`
	Date        string `json:"date"`
}

// IsEmpty reports whether every field of the entry is blank.
func (e Experience) IsEmpty() bool {
	return blank(e.Role, e.Company, e.Start, e.End) && len(NonBlank(e.Achievements)) == 0
}

// IsEmpty reports whether every field of the entry is blank.
func (e Education) IsEmpty() bool {
	return blank(e.Degree, e.School, e.Start, e.End)
}

// IsEmpty reports whether every field of the entry is blank.
func (c Certification) IsEmpty() bool {
	return blank(c.Name, c.Issuer, c.Date)
}

// IsEmpty reports whether every field of the entry is blank.
func (l Language) IsEmpty() bool {
	return blank(l.Name, l.Proficiency)
}

// IsEmpty reports whether every field of the entry is blank.
func (x Extra) IsEmpty() bool {
	return blank(x.Description, x.Date)
}

// NonBlank returns the trimmed non-empty values in input order.
func NonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
