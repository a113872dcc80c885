package handlers

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var (
	pageTemplate  = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))
	errorTemplate = template.Must(template.ParseFS(templateFS, "templates/error.html.tmpl"))
)

type errorPage struct {
	Status     int
	StatusText string
	Message    string
	RequestID  string
}
