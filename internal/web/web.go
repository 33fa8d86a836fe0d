package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// Templates parses every page together with the shared layout blocks.
// Pages are addressed by file name, e.g. "home.html".
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/*.html")
}

// Static exposes the stylesheet and other assets served under /static
func Static() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}
