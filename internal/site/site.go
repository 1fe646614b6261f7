package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageTemplate is the name the page is rendered under.
const PageTemplate = "page.tmpl"

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() (*template.Template, error) {
	t, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// StaticFS serves the stylesheet and other assets under /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// LanguageOption is one entry of the language switch.
type LanguageOption struct {
	Label  string
	URL    string
	Active bool
}

func languageOptions(active string, supported []string) []LanguageOption {
	out := make([]LanguageOption, 0, len(supported))
	for _, l := range supported {
		out = append(out, LanguageOption{
			Label:  strings.ToUpper(l),
			URL:    "/" + l + "/",
			Active: l == active,
		})
	}
	return out
}
