// Package views holds the embedded HTML templates of the site.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed layout.html posts/*.html pages/*.html shared/*.html
var files embed.FS

// pages maps a template name to the files rendered inside the layout.
var pages = map[string][]string{
	"home":      {"posts/index.html", "shared/post_card.html"},
	"show":      {"posts/show.html", "shared/comments.html"},
	"about":     {"pages/about.html"},
	"not_found": {"pages/not_found.html"},
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Load parses every page together with the shared layout.
func Load() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for name, parts := range pages {
		patterns := append([]string{"layout.html"}, parts...)
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(files, patterns...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

// MustLoad is Load for program start-up.
func MustLoad() map[string]*template.Template {
	templates, err := Load()
	if err != nil {
		panic(err)
	}
	return templates
}
