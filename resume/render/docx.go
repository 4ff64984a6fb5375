package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	styleHeading1   = "Heading1"
	styleHeading2   = "Heading2"
	styleListBullet = "ListBullet"
	styleMeta       = "Meta"
	bulletNumID     = 1
)

type docxPart struct {
	name    string
	content string
}

// ComposeDOCX renders src into an OOXML word-processing package.
func ComposeDOCX(src Source) ([]byte, error) {
	body, err := renderDocumentBody(Plan(src))
	if err != nil {
		return nil, fmt.Errorf("compose docx: %w", err)
	}

	parts := []docxPart{
		{name: "[Content_Types].xml", content: contentTypesXML},
		{name: "_rels/.rels", content: packageRelsXML},
		{name: "docProps/core.xml", content: corePropsXML(src.displayName()+" Resume", time.Now().UTC())},
		{name: "word/_rels/document.xml.rels", content: documentRelsXML},
		{name: "word/styles.xml", content: stylesXML()},
		{name: "word/numbering.xml", content: numberingXML},
		{name: "word/document.xml", content: documentXML(body)},
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	for _, part := range parts {
		if err := writeZipPart(writer, part); err != nil {
			_ = writer.Close()
			return nil, fmt.Errorf("compose docx: %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("compose docx: %w", err)
	}
	return output.Bytes(), nil
}

func writeZipPart(writer *zip.Writer, part docxPart) error {
	dst, err := writer.CreateHeader(&zip.FileHeader{
		Name:     part.name,
		Method:   zip.Deflate,
		Modified: time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		return err
	}
	_, err = dst.Write([]byte(part.content))
	return err
}

func renderDocumentBody(blocks []Block) (string, error) {
	var buf bytes.Buffer
	for _, block := range blocks {
		if err := writeDocxParagraph(&buf, block); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func writeDocxParagraph(buf *bytes.Buffer, block Block) error {
	buf.WriteString("<w:p>")
	if props := paragraphProps(block.Kind); props != "" {
		buf.WriteString(props)
	}
	if block.Kind != BlockSpacer {
		lines := strings.Split(block.Text, "\n")
		for i, line := range lines {
			if err := writeDocxRun(buf, block.Kind, line, i > 0); err != nil {
				return err
			}
		}
	}
	buf.WriteString("</w:p>")
	return nil
}

func paragraphProps(kind BlockKind) string {
	switch kind {
	case BlockName:
		return `<w:pPr><w:pStyle w:val="` + styleHeading1 + `"/></w:pPr>`
	case BlockHeading:
		return `<w:pPr><w:pStyle w:val="` + styleHeading2 + `"/></w:pPr>`
	case BlockBullet:
		return `<w:pPr><w:pStyle w:val="` + styleListBullet + `"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="` +
			strconv.Itoa(bulletNumID) + `"/></w:numPr></w:pPr>`
	case BlockMeta:
		return `<w:pPr><w:pStyle w:val="` + styleMeta + `"/></w:pPr>`
	default:
		return ""
	}
}

func writeDocxRun(buf *bytes.Buffer, kind BlockKind, text string, breakBefore bool) error {
	buf.WriteString("<w:r>")
	switch kind {
	case BlockName, BlockEntry:
		buf.WriteString("<w:rPr><w:b/></w:rPr>")
	case BlockTitle:
		buf.WriteString("<w:rPr><w:i/></w:rPr>")
	}
	if breakBefore {
		buf.WriteString("<w:br/>")
	}
	buf.WriteString(`<w:t xml:space="preserve">`)
	if err := xml.EscapeText(buf, []byte(text)); err != nil {
		return err
	}
	buf.WriteString("</w:t></w:r>")
	return nil
}

func documentXML(body string) string {
	return xml.Header +
		`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `"><w:body>` +
		body +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`
}

func stylesXML() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:styles xmlns:w="` + wmlNamespace + `">`)
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	b.WriteString(`<w:rFonts w:ascii="` + FontFamily + `" w:hAnsi="` + FontFamily + `" w:cs="` + FontFamily + `"/>`)
	b.WriteString(`<w:sz w:val="` + halfPoints(BodySize) + `"/><w:szCs w:val="` + halfPoints(BodySize) + `"/>`)
	b.WriteString(`</w:rPr></w:rPrDefault></w:docDefaults>`)
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	b.WriteString(paragraphStyleXML(styleHeading1, "heading 1", styleFor(BlockName), 0))
	b.WriteString(paragraphStyleXML(styleHeading2, "heading 2", styleFor(BlockHeading), 1))
	b.WriteString(paragraphStyleXML(styleMeta, "Meta", styleFor(BlockMeta), -1))
	b.WriteString(`<w:style w:type="paragraph" w:styleId="` + styleListBullet + `"><w:name w:val="List Bullet"/>`)
	b.WriteString(`<w:basedOn w:val="Normal"/><w:qFormat/><w:pPr><w:numPr><w:numId w:val="` + strconv.Itoa(bulletNumID) + `"/></w:numPr>`)
	b.WriteString(`<w:ind w:left="360" w:hanging="360"/></w:pPr></w:style>`)
	b.WriteString(`</w:styles>`)
	return b.String()
}

func paragraphStyleXML(id, name string, style BlockStyle, outline int) string {
	var b strings.Builder
	b.WriteString(`<w:style w:type="paragraph" w:styleId="` + id + `"><w:name w:val="` + name + `"/>`)
	b.WriteString(`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>`)
	b.WriteString(`<w:pPr><w:spacing w:after="` + strconv.Itoa(int(style.SpaceAfter*20)) + `"/>`)
	if outline >= 0 {
		b.WriteString(`<w:outlineLvl w:val="` + strconv.Itoa(outline) + `"/>`)
	}
	b.WriteString(`</w:pPr><w:rPr>`)
	if style.Bold {
		b.WriteString(`<w:b/>`)
	}
	if style.Italic {
		b.WriteString(`<w:i/>`)
	}
	b.WriteString(`<w:color w:val="` + style.Color + `"/>`)
	b.WriteString(`<w:sz w:val="` + halfPoints(style.Size) + `"/><w:szCs w:val="` + halfPoints(style.Size) + `"/>`)
	b.WriteString(`</w:rPr></w:style>`)
	return b.String()
}

func halfPoints(size float64) string {
	return strconv.Itoa(int(size * 2))
}

func corePropsXML(title string, created time.Time) string {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(title))
	stamp := created.Format(time.RFC3339)
	return xml.Header +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + escaped.String() + `</dc:title><dc:creator>resume-builder</dc:creator>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

const numberingXML = xml.Header +
	`<w:numbering xmlns:w="` + wmlNamespace + `">` +
	`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`
