package render

import (
	"fmt"
	"strings"
)

// Format is a downloadable document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Document is a fully composed file held in memory.
type Document struct {
	Data     []byte
	MimeType string
	FileName string
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("unsupported format %q", raw)
	}
}

// Compose renders src in the requested format.
func Compose(src Source, format Format) (Document, error) {
	var (
		data []byte
		mime string
		err  error
	)
	switch format {
	case FormatPDF:
		data, err = ComposePDF(src)
		mime = MimePDF
	case FormatDOCX:
		data, err = ComposeDOCX(src)
		mime = MimeDOCX
	default:
		return Document{}, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return Document{}, err
	}
	return Document{
		Data:     data,
		MimeType: mime,
		FileName: FileName(src.displayName(), format),
	}, nil
}

// FileName builds "<Name>_Resume.<ext>" with spaces turned into underscores.
func FileName(name string, format Format) string {
	return attachmentBase(name) + "_Resume." + string(format)
}

func attachmentBase(name string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", `"`, "", "\r", "", "\n", "")
	base := replacer.Replace(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, "..", "_")
	if base == "" {
		return "Applicant"
	}
	return base
}
