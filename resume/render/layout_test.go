package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func fullResume() model.ResumeInput {
	return model.ResumeInput{
		Name:      "Jane Doe",
		JobTitle:  "Staff Engineer",
		Phone:     "555-0100",
		Email:     "jane@example.com",
		Portfolio: "https://www.linkedin.com/in/jane",
		Address:   []string{"1 Main St", "Springfield"},
		Summary:   "Builds reliable systems.",
		Experience: []model.Experience{
			{Role: "Lead", Company: "Acme", Start: "2019", End: "Present", Achievements: []string{"Led team of 5", "Shipped v2"}},
			{Role: "Engineer", Company: "Initech", Achievements: []string{"Cut costs"}},
		},
		Education:      []model.Education{{Degree: "BSc", School: "State U", Start: "2010", End: "2014"}},
		Certifications: []model.Certification{{Name: "CKA", Issuer: "CNCF", Date: "2021"}},
		Skills:         []string{"Go", "SQL", "Go"},
		Languages:      []model.Language{{Name: "French", Proficiency: "Fluent"}},
		Extras:         []model.Extra{{Description: "Speaker at GopherCon", Date: "2022"}},
	}
}

func headings(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == BlockHeading {
			out = append(out, b.Text)
		}
	}
	return out
}

func TestPlanStructuredSectionOrder(t *testing.T) {
	blocks := Plan(Structured{Resume: fullResume()})

	require.GreaterOrEqual(t, len(blocks), 3)
	assert.Equal(t, Block{Kind: BlockName, Text: "Jane Doe"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockTitle, Text: "Staff Engineer"}, blocks[1])
	assert.Equal(t, Block{Kind: BlockLine, Text: "555-0100 | jane@example.com | https://www.linkedin.com/in/jane"}, blocks[3])
	assert.Equal(t, Block{Kind: BlockLine, Text: "1 Main St\nSpringfield"}, blocks[4])

	assert.Equal(t, []string{
		sectionSummary, sectionExperience, sectionEducation, sectionCertifications,
		sectionSkills, sectionLanguages, sectionAdditional,
	}, headings(blocks))

	assert.Contains(t, blocks, Block{Kind: BlockEntry, Text: "Lead — Acme"})
	assert.Contains(t, blocks, Block{Kind: BlockMeta, Text: "2019 – Present"})
	assert.Contains(t, blocks, Block{Kind: BlockEntry, Text: "BSc — State U"})
	assert.Contains(t, blocks, Block{Kind: BlockLine, Text: "CKA — CNCF"})
	assert.Contains(t, blocks, Block{Kind: BlockLine, Text: "Go, SQL, Go"})
	assert.Contains(t, blocks, Block{Kind: BlockLine, Text: "French — Fluent"})
	assert.Contains(t, blocks, Block{Kind: BlockLine, Text: "Speaker at GopherCon — 2022"})
}

func TestPlanStructuredKeepsListOrder(t *testing.T) {
	blocks := Plan(Structured{Resume: fullResume()})

	var bullets []string
	for _, b := range blocks {
		if b.Kind == BlockBullet {
			bullets = append(bullets, b.Text)
		}
	}
	assert.Equal(t, []string{"Led team of 5", "Shipped v2", "Cut costs"}, bullets)
}

func TestPlanStructuredOmitsEmptySections(t *testing.T) {
	resume := model.ResumeInput{
		Name:       "Jane Doe",
		Experience: []model.Experience{{Role: " ", Achievements: []string{""}}},
		Skills:     []string{"  "},
		Education:  []model.Education{{School: "State U"}},
	}

	blocks := Plan(Structured{Resume: resume})
	assert.Equal(t, []string{sectionEducation}, headings(blocks))
	assert.Equal(t, Block{Kind: BlockTitle, Text: "Job Title"}, blocks[1])
	assert.Contains(t, blocks, Block{Kind: BlockEntry, Text: "State U"})
	for _, b := range blocks {
		assert.NotEqual(t, BlockMeta, b.Kind)
	}
}

func TestPlanStructuredEmptyRecord(t *testing.T) {
	blocks := Plan(Structured{})
	assert.Equal(t, []Block{
		{Kind: BlockName, Text: "Applicant"},
		{Kind: BlockTitle, Text: "Job Title"},
		{Kind: BlockSpacer},
	}, blocks)
}

func TestPlanFreeText(t *testing.T) {
	blocks := Plan(FreeText{Name: "Jane", JobTitle: "Engineer", Text: "Summary\nBuilt systems.\n\nExperience\n- Led team of 5"})

	assert.Equal(t, []Block{
		{Kind: BlockName, Text: "Jane"},
		{Kind: BlockTitle, Text: "Engineer"},
		{Kind: BlockSpacer},
		{Kind: BlockHeading, Text: "Summary"},
		{Kind: BlockLine, Text: "Built systems."},
		{Kind: BlockSpacer},
		{Kind: BlockHeading, Text: "Experience"},
		{Kind: BlockBullet, Text: "Led team of 5"},
	}, blocks)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume.pdf", FileName("Jane Doe", FormatPDF))
	assert.Equal(t, "Applicant_Resume.docx", FileName("  ", FormatDOCX))
	assert.Equal(t, "a_b_Resume.pdf", FileName(`a/b"`, FormatPDF))
	assert.Equal(t, "__etc_Resume.pdf", FileName("../etc", FormatPDF))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("odt")
	assert.Error(t, err)
}
