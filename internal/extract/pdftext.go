package extract

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/ledongthuc/pdf"
)

// identityCMap matches a ToUnicode map whose only entry sends every two-byte
// code to the same UTF-16 value. fpdf writes this for its UTF-8 fonts.
var identityCMap = regexp.MustCompile(`(?s)\b1\s+beginbfrange\s*<0000>\s*<FFFF>\s*<0000>\s*endbfrange`)

// pageText mirrors pdf.Page.GetPlainText. Fonts with an identity ToUnicode
// map are decoded as UTF-16BE because the library only offsets the low byte
// of a range, which corrupts every code point above U+00FF.
func pageText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("read pdf page: %v", r)
		}
	}()

	if p.V.IsNull() || p.V.Key("Contents").Kind() == pdf.Null {
		return "", nil
	}

	encoders := make(map[string]pdf.TextEncoding)
	var enc pdf.TextEncoding = rawEncoding{}
	var b strings.Builder
	show := func(raw string) {
		b.WriteString(enc.Decode(raw))
	}

	pdf.Interpret(p.V.Key("Contents"), func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		case "BT", "T*":
			b.WriteString("\n")
		case "Tf":
			if len(args) == 2 {
				enc = encoderFor(p, args[0].Name(), encoders)
			}
		case "Tj", "'":
			if len(args) == 1 {
				show(args[0].RawString())
			}
		case "\"":
			if len(args) == 3 {
				show(args[2].RawString())
			}
		case "TJ":
			if len(args) == 1 {
				for i := 0; i < args[0].Len(); i++ {
					if x := args[0].Index(i); x.Kind() == pdf.String {
						show(x.RawString())
					}
				}
			}
		}
	})
	return b.String(), nil
}

func encoderFor(p pdf.Page, name string, cache map[string]pdf.TextEncoding) pdf.TextEncoding {
	if enc, ok := cache[name]; ok {
		return enc
	}
	font := p.Font(name)
	var enc pdf.TextEncoding
	if hasIdentityUnicode(font) {
		enc = utf16Encoding{}
	} else {
		enc = font.Encoder()
	}
	cache[name] = enc
	return enc
}

func hasIdentityUnicode(font pdf.Font) bool {
	if font.V.Key("Encoding").Name() != "Identity-H" {
		return false
	}
	toUnicode := font.V.Key("ToUnicode")
	if toUnicode.Kind() != pdf.Stream {
		return false
	}
	rc := toUnicode.Reader()
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return false
	}
	return identityCMap.Match(raw) && !bytes.Contains(raw, []byte("beginbfchar"))
}

type utf16Encoding struct{}

func (utf16Encoding) Decode(raw string) string {
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return string(utf16.Decode(units))
}

type rawEncoding struct{}

func (rawEncoding) Decode(raw string) string { return raw }
