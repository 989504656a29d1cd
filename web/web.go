// Package web holds the dashboard template shared by the HTTP server and the
// static page generator.
package web

import (
	"bytes"
	_ "embed"
	"html/template"

	"skibulletin/internal/store"
)

//go:embed index.html
var indexTemplate string

var tmpl = template.Must(template.New("index").Parse(indexTemplate))

// PageData is the template context: either a stored report, or an error
// message when no data is available.
type PageData struct {
	Report *store.StoredReport
	Error  string
}

// Render executes the dashboard template over data.
func Render(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
