package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"

	"resume-builder/resume/render"
)

func TestExtractTextFromBytes_Docx(t *testing.T) {
	data, err := render.ComposeDOCX(render.FreeText{Name: "Ada Lovelace", JobTitle: "Analyst", Text: "Summary\nWrote the first program."})
	if err != nil {
		t.Fatalf("compose docx: %v", err)
	}

	text, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "Analyst", "Summary", "Wrote the first program."} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in extracted text, got %q", want, text)
		}
	}
}

func TestExtractTextFromBytes_PDF(t *testing.T) {
	data, err := render.ComposePDF(render.FreeText{Name: "Grace Hopper", JobTitle: "Admiral", Text: "- Built COBOL"})
	if err != nil {
		t.Fatalf("compose pdf: %v", err)
	}

	text, err := ExtractTextFromBytes(context.Background(), data, "", "resume.pdf")
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	compact := strings.Join(strings.Fields(text), "")
	if !strings.Contains(compact, "GraceHopper") {
		t.Fatalf("expected name in extracted text, got %q", text)
	}
	if !strings.Contains(compact, "BuiltCOBOL") {
		t.Fatalf("expected bullet in extracted text, got %q", text)
	}
}

func TestExtractTextFromBytes_PDFKeepsNonLatinText(t *testing.T) {
	data, err := render.ComposePDF(render.FreeText{Name: "Łukasz Żółć", JobTitle: "Інженер", Text: "Skills\n- 日本語 and Ελληνικά"})
	if err != nil {
		t.Fatalf("compose pdf: %v", err)
	}

	text, err := ExtractTextFromBytes(context.Background(), data, "application/pdf", "resume.pdf")
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	compact := strings.Join(strings.Fields(text), "")
	for _, want := range []string{"ŁukaszŻółć", "Інженер", "日本語andΕλληνικά"} {
		if !strings.Contains(compact, want) {
			t.Fatalf("expected %q in extracted text, got %q", want, text)
		}
	}
}

func TestExtractTextFromBytes_PDFCoreFont(t *testing.T) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 11)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.MultiCell(0, 14, tr("Café résumé"), "", "L", false)
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("write pdf: %v", err)
	}

	text, err := ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/pdf", "core.pdf")
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	if !strings.Contains(text, "Café résumé") {
		t.Fatalf("expected WinAnsi text to decode, got %q", text)
	}
}

func TestUTF16EncodingDecode(t *testing.T) {
	cases := map[string]string{
		"\x01\x41\x00\x41": "ŁA",
		"\x04\x06":         "І",
		"\xd8\x3d\xde\x00": "😀",
		"\x00\x41\x00":     "A",
		"":                 "",
	}
	for raw, want := range cases {
		if got := (utf16Encoding{}).Decode(raw); got != want {
			t.Fatalf("Decode(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractTextFromBytes_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExtractTextFromBytes(ctx, []byte("%PDF-1.3"), "application/pdf", "x.pdf"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document xmlns:w="w"><w:body><w:p><w:r><w:t>One</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Two</w:t><w:br/><w:t>Three</w:t></w:r></w:p></w:body></w:document>`
	if got := stripDocxXML(raw); got != "One\nTwo\nThree" {
		t.Fatalf("unexpected text: %q", got)
	}
}
