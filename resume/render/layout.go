package render

import (
	"strings"

	"resume-builder/resume/classify"
	"resume-builder/resume/contract"
	"resume-builder/resume/model"
)

// Source is the input to a composer: either FreeText or Structured.
type Source interface {
	plan() []Block
	displayName() string
}

// FreeText is generated plain text laid out by line classification.
type FreeText struct {
	Name     string
	JobTitle string
	Text     string
}

// Structured is a résumé record laid out in the fixed section order.
type Structured struct {
	Resume model.ResumeInput
}

// BlockKind is the role a block plays in the document.
type BlockKind int

const (
	BlockName BlockKind = iota
	BlockTitle
	BlockHeading
	BlockEntry
	BlockMeta
	BlockLine
	BlockBullet
	BlockSpacer
)

// Block is one element of a composed document. Text may contain newlines
// only for BlockLine.
type Block struct {
	Kind BlockKind
	Text string
}

const (
	sectionSummary        = "Summary"
	sectionExperience     = "Experience"
	sectionEducation      = "Education"
	sectionCertifications = "Certifications"
	sectionSkills         = "Skills"
	sectionLanguages      = "Languages"
	sectionAdditional     = "Additional"

	dashSeparator    = " — "
	rangeSeparator   = " – "
	contactSeparator = " | "
	skillSeparator   = ", "
)

// Plan returns the ordered blocks both composers render for src.
func Plan(src Source) []Block {
	return src.plan()
}

func (f FreeText) displayName() string {
	return contract.DisplayName(f.Name)
}

func (f FreeText) plan() []Block {
	blocks := header(f.Name, f.JobTitle)
	for _, line := range classify.Text(f.Text) {
		switch line.Kind {
		case classify.Blank:
			blocks = append(blocks, Block{Kind: BlockSpacer})
		case classify.Header:
			blocks = append(blocks, Block{Kind: BlockHeading, Text: line.Text})
		case classify.Bullet:
			blocks = append(blocks, Block{Kind: BlockBullet, Text: line.Text})
		default:
			blocks = append(blocks, Block{Kind: BlockLine, Text: line.Text})
		}
	}
	return blocks
}

func (s Structured) displayName() string {
	return contract.DisplayName(s.Resume.Name)
}

func (s Structured) plan() []Block {
	r := s.Resume
	blocks := header(r.Name, r.JobTitle)

	if contact := joinNonBlank(contactSeparator, r.Phone, r.Email, r.Portfolio); contact != "" {
		blocks = append(blocks, Block{Kind: BlockLine, Text: contact})
	}
	if lines := model.NonBlank(r.Address); len(lines) > 0 {
		blocks = append(blocks, Block{Kind: BlockLine, Text: strings.Join(lines, "\n")})
	}
	if summary := strings.TrimSpace(r.Summary); summary != "" {
		blocks = append(blocks, heading(sectionSummary), Block{Kind: BlockLine, Text: summary})
	}

	blocks = appendExperience(blocks, r.Experience)
	blocks = appendEducation(blocks, r.Education)
	blocks = appendCertifications(blocks, r.Certifications)

	if skills := model.NonBlank(r.Skills); len(skills) > 0 {
		blocks = append(blocks, heading(sectionSkills), Block{Kind: BlockLine, Text: strings.Join(skills, skillSeparator)})
	}

	blocks = appendLanguages(blocks, r.Languages)
	blocks = appendExtras(blocks, r.Extras)
	return blocks
}

func header(name, title string) []Block {
	return []Block{
		{Kind: BlockName, Text: contract.DisplayName(name)},
		{Kind: BlockTitle, Text: contract.DisplayJobTitle(title)},
		{Kind: BlockSpacer},
	}
}

func heading(text string) Block {
	return Block{Kind: BlockHeading, Text: text}
}

func appendExperience(blocks []Block, items []model.Experience) []Block {
	started := false
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		if !started {
			blocks = append(blocks, heading(sectionExperience))
			started = true
		}
		if line := joinNonBlank(dashSeparator, item.Role, item.Company); line != "" {
			blocks = append(blocks, Block{Kind: BlockEntry, Text: line})
		}
		if dates := joinNonBlank(rangeSeparator, item.Start, item.End); dates != "" {
			blocks = append(blocks, Block{Kind: BlockMeta, Text: dates})
		}
		for _, achievement := range model.NonBlank(item.Achievements) {
			blocks = append(blocks, Block{Kind: BlockBullet, Text: achievement})
		}
		blocks = append(blocks, Block{Kind: BlockSpacer})
	}
	return blocks
}

func appendEducation(blocks []Block, items []model.Education) []Block {
	started := false
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		if !started {
			blocks = append(blocks, heading(sectionEducation))
			started = true
		}
		if line := joinNonBlank(dashSeparator, item.Degree, item.School); line != "" {
			blocks = append(blocks, Block{Kind: BlockEntry, Text: line})
		}
		if dates := joinNonBlank(rangeSeparator, item.Start, item.End); dates != "" {
			blocks = append(blocks, Block{Kind: BlockMeta, Text: dates})
		}
	}
	return blocks
}

func appendCertifications(blocks []Block, items []model.Certification) []Block {
	started := false
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		if !started {
			blocks = append(blocks, heading(sectionCertifications))
			started = true
		}
		if line := joinNonBlank(dashSeparator, item.Name, item.Issuer); line != "" {
			blocks = append(blocks, Block{Kind: BlockLine, Text: line})
		}
		if date := strings.TrimSpace(item.Date); date != "" {
			blocks = append(blocks, Block{Kind: BlockMeta, Text: date})
		}
	}
	return blocks
}

func appendLanguages(blocks []Block, items []model.Language) []Block {
	started := false
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		if !started {
			blocks = append(blocks, heading(sectionLanguages))
			started = true
		}
		blocks = append(blocks, Block{Kind: BlockLine, Text: joinNonBlank(dashSeparator, item.Name, item.Proficiency)})
	}
	return blocks
}

func appendExtras(blocks []Block, items []model.Extra) []Block {
	started := false
	for _, item := range items {
		if item.IsEmpty() {
			continue
		}
		if !started {
			blocks = append(blocks, heading(sectionAdditional))
			started = true
		}
		blocks = append(blocks, Block{Kind: BlockLine, Text: joinNonBlank(dashSeparator, item.Description, item.Date)})
	}
	return blocks
}

func joinNonBlank(sep string, values ...string) string {
	return strings.Join(model.NonBlank(values), sep)
}
