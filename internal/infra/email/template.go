// Package email renders transactional email templates and delivers them
// through a Postmark-compatible HTTP API.
package email

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"

	domainErrors "rituality/internal/domain/errors"
)

// Renderer turns an HTML template file plus data into a mail body.
// Files are read on every call so template edits need no restart.
type Renderer struct {
	dir string
}

// NewRenderer creates a Renderer rooted at the given template directory.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render reads <dir>/<fileName>, parses it as an html/template and executes
// it with the given data. The result depends only on the file contents and
// the data, so rendering the same inputs twice yields identical output.
func (r *Renderer) Render(fileName string, data any) (string, error) {
	raw, err := os.ReadFile(filepath.Join(r.dir, fileName))
	if err != nil {
		return "", domainErrors.ErrTemplateNotFound.WithDetails(fileName)
	}

	tmpl, err := template.New(fileName).Parse(string(raw))
	if err != nil {
		return "", domainErrors.ErrTemplateCompilation.WithDetails(err.Error())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", domainErrors.ErrTemplateCompilation.WithDetails(err.Error())
	}

	return buf.String(), nil
}
