// Package classify labels lines of generated résumé text as blank lines,
// section headers, bullet items or prose.
package classify

import "strings"

// Kind is the label assigned to a single line.
type Kind int

const (
	Blank Kind = iota
	Header
	Bullet
	Prose
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Header:
		return "header"
	case Bullet:
		return "bullet"
	default:
		return "prose"
	}
}

// Line is a classified line with its display text.
type Line struct {
	Kind Kind
	Text string
}

// SectionNames are the labels recognized as headers even without a trailing colon.
var SectionNames = []string{"summary", "experience", "skills", "education", "additional"}

const bulletMarkers = "-•"

// Classify labels one line. It never looks at neighbouring lines.
func Classify(line string) Line {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return Line{Kind: Blank}
	}

	lower := strings.ToLower(stripped)
	if strings.HasSuffix(lower, ":") || isSectionName(lower) {
		return Line{Kind: Header, Text: strings.TrimRight(stripped, ":")}
	}

	if strings.ContainsAny(firstRune(stripped), bulletMarkers) {
		text := strings.TrimLeft(stripped, bulletMarkers+" ")
		return Line{Kind: Bullet, Text: strings.TrimSpace(text)}
	}

	return Line{Kind: Prose, Text: stripped}
}

// Text splits a block on line breaks and classifies every line in order.
func Text(text string) []Line {
	if text == "" {
		return nil
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")

	raw := strings.Split(normalized, "\n")
	out := make([]Line, 0, len(raw))
	for _, line := range raw {
		out = append(out, Classify(line))
	}
	return out
}

func isSectionName(lower string) bool {
	for _, name := range SectionNames {
		if lower == name {
			return true
		}
	}
	return false
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
