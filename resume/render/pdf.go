package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	pdfPageSize     = "Letter"
	pdfMargin       = 72.0
	pdfBulletIndent = 14.0
	pdfBulletMarker = "• "
	pdfFontFamily   = "GoSans"
)

// pdfFaces are embedded as UTF-8 fonts so text outside Latin-1 keeps its code points.
var pdfFaces = []struct {
	style string
	ttf   []byte
}{
	{"", goregular.TTF},
	{"B", gobold.TTF},
	{"I", goitalic.TTF},
	{"BI", gobolditalic.TTF},
}

// ComposePDF renders src into a paginated Letter-size PDF.
func ComposePDF(src Source) ([]byte, error) {
	pdf := fpdf.New("P", "pt", pdfPageSize, "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(src.displayName()+" Resume", true)
	pdf.SetCreator("resume-builder", true)
	for _, face := range pdfFaces {
		pdf.AddUTF8FontFromBytes(pdfFontFamily, face.style, face.ttf)
	}
	pdf.AddPage()

	for _, block := range Plan(src) {
		writePDFBlock(pdf, block)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("compose pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("compose pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFBlock(pdf *fpdf.Fpdf, block Block) {
	if block.Kind == BlockSpacer {
		pdf.Ln(SpacerHeight)
		return
	}

	style := styleFor(block.Kind)
	pdf.SetFont(pdfFontFamily, pdfFontStyle(style), style.Size)
	r, g, b := hexToRGB(style.Color)
	pdf.SetTextColor(r, g, b)

	if block.Kind == BlockBullet {
		left, _, _, _ := pdf.GetMargins()
		pdf.SetLeftMargin(left + pdfBulletIndent)
		pdf.SetX(left + pdfBulletIndent)
		pdf.MultiCell(0, style.Leading, pdfText(pdfBulletMarker+block.Text), "", "L", false)
		pdf.SetLeftMargin(left)
		pdf.SetX(left)
	} else {
		pdf.MultiCell(0, style.Leading, pdfText(block.Text), "", "L", false)
	}

	if style.SpaceAfter > 0 {
		pdf.Ln(style.SpaceAfter)
	}
}

// pdfText swaps runes outside the Basic Multilingual Plane for U+FFFD; fpdf
// rejects them.
func pdfText(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return unicode.ReplacementChar
		}
		return r
	}, s)
}

func pdfFontStyle(style BlockStyle) string {
	out := ""
	if style.Bold {
		out += "B"
	}
	if style.Italic {
		out += "I"
	}
	return out
}

func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
