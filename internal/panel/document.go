// internal/panel/document.go
package panel

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

// utilitiesCSS provides the utility classes the fragment's markup relies on
// when no host stylesheet is present.
//
//go:embed assets/utilities.css
var utilitiesCSS string

// DefaultDocumentTitle is used by RenderDocument when no title is given.
const DefaultDocumentTitle = "Metrics Insights Panel"

type documentData struct {
	Title      string
	Stylesheet template.CSS
	Panel      template.HTML
}

var documentTemplate = template.Must(template.New("panel-document").Parse(documentTemplateHTML))

const documentTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>{{ .Stylesheet }}</style>
</head>
<body>
{{ .Panel }}
</body>
</html>
`

// RenderDocument renders the panel wrapped in a standalone HTML page that
// bundles the utility stylesheet, for viewing outside a host UI.
func (r *Renderer) RenderDocument(in MetricsInput, title string) (string, error) {
	fragment, err := r.Render(in)
	if err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultDocumentTitle
	}

	data := documentData{
		Title:      title,
		Stylesheet: template.CSS(utilitiesCSS),
		Panel:      template.HTML(fragment),
	}
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render panel document: %w", err)
	}
	return buf.String(), nil
}
