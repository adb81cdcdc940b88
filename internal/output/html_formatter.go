package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/vntrade/tariff-calculator/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML brief from the Markdown brief.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/brief.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("brief").Parse(htmlTemplateSource))

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := markdownRenderer.Convert(md, &body); err != nil {
		return nil, err
	}

	title := report.Title
	if title == "" {
		title = "Tariff Impact Brief"
	}
	data := struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
