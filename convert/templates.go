package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"fig2html/config"
	"fig2html/content"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context      string
	Name         string
	Version      string
	LastModified string
	FileKey      string
	SourceFile   string
	Pages        []string
}

func buildPageNames(c *content.Content) []string {
	pages := c.File.Pages()
	result := make([]string, 0, len(pages))
	for _, p := range pages {
		result = append(result, p.Name)
	}
	return result
}

func buildLastModified(c *content.Content) string {
	if c.File.LastModified.IsZero() {
		return ""
	}
	return c.File.LastModified.Format("2006-01-02")
}

func expandTemplate(c *content.Content, name config.TemplateFieldName, field, fileKey string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:      string(name),
		Name:         c.File.Name,
		Version:      c.File.Version,
		LastModified: buildLastModified(c),
		FileKey:      fileKey,
		SourceFile:   strings.TrimSuffix(filepath.Base(c.SrcName), filepath.Ext(c.SrcName)),
		Pages:        buildPageNames(c),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
