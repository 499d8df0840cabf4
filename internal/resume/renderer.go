package resume

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

var (
	ErrTemplateMissing = errors.New("resume template not found")
	ErrConversion      = errors.New("resume conversion failed")
)

// Data is the fixed set of placeholders the resume template knows about.
type Data struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	Skills   []string
}

// Renderer fills the HTML template with profile data and converts it to PDF
// through wkhtmltopdf.
type Renderer struct {
	TemplatePath string
	OutputPath   string
	BinaryPath   string
}

func NewRenderer(templatePath, outputPath, binaryPath string) *Renderer {
	return &Renderer{
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		BinaryPath:   binaryPath,
	}
}

// Render produces the PDF and returns the path it was written to.
func (r *Renderer) Render(data Data) (string, error) {
	html, err := r.renderHTML(data)
	if err != nil {
		return "", err
	}

	if r.BinaryPath != "" {
		wkhtmltopdf.SetPath(r.BinaryPath)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	pdfg.AddPage(wkhtmltopdf.NewPageReader(bytes.NewReader(html)))
	if err := pdfg.Create(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	if err := os.MkdirAll(filepath.Dir(r.OutputPath), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	if err := pdfg.WriteFile(r.OutputPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}

	return r.OutputPath, nil
}

func (r *Renderer) renderHTML(data Data) ([]byte, error) {
	raw, err := os.ReadFile(r.TemplatePath)
	if err != nil {
		return nil, ErrTemplateMissing
	}

	tpl, err := template.New(filepath.Base(r.TemplatePath)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return buf.Bytes(), nil
}
