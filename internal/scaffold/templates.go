package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"
)

// Templates use [[ ]] delimiters because the generated JavaScript is full
// of {{ }} object literals.
//
//go:embed all:templates
var templateFS embed.FS

const (
	leftDelim  = "[["
	rightDelim = "]]"
)

// Render executes the embedded template at name (relative to templates/,
// without the .tmpl suffix) against data.
func Render(name string, data any) (string, error) {
	p := "templates/" + name + ".tmpl"
	raw, err := fs.ReadFile(templateFS, p)
	if err != nil {
		return "", fmt.Errorf("template %q not found: %w", name, err)
	}

	tmpl, err := template.New(name).Delims(leftDelim, rightDelim).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Exists reports whether a template is embedded under name.
func Exists(name string) bool {
	_, err := fs.Stat(templateFS, "templates/"+name+".tmpl")
	return err == nil
}
