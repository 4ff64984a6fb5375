package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	// IndexPage is the input form.
	IndexPage = "index.html"
	// ResultPage shows generated text with download actions.
	ResultPage = "result.html"
)

// Templates parses the embedded pages.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// IndexData is rendered into IndexPage.
type IndexData struct {
	Messages []string
}

// ResultData is rendered into ResultPage.
type ResultData struct {
	Name        string
	JobTitle    string
	ResumeText  string
	GeneratedAt string
}
