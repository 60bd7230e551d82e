package script

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// pageTemplate wraps rendered script content in a standalone HTML page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: Georgia, serif; line-height: 1.6; color: #1f2430; }
h1 { border-bottom: 2px solid #d4a017; padding-bottom: 0.3rem; }
h2 { color: #7a4a12; margin-top: 2rem; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// ExportHTML renders the script's export text as a standalone HTML page.
func ExportHTML(s Script) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	var content bytes.Buffer
	if err := md.Convert([]byte(ExportText(s)), &content); err != nil {
		return "", fmt.Errorf("converting script to HTML: %w", err)
	}

	title := s.ScriptTitle
	if title == "" {
		title = "Untitled"
	}

	var page bytes.Buffer
	err := pageTmpl.Execute(&page, struct {
		Title   string
		Content template.HTML
	}{Title: title, Content: template.HTML(content.String())})
	if err != nil {
		return "", fmt.Errorf("rendering HTML page: %w", err)
	}
	return page.String(), nil
}
