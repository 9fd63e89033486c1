// Package views holds the operator console page.
package views

import (
	_ "embed"
	"html/template"
)

//go:embed index.html
var indexHTML string

// Index parses the console page template.
func Index() (*template.Template, error) {
	return template.New("index.html").Parse(indexHTML)
}
