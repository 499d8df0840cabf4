package integration

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/config"
	"portfolio_backend/test/helpers"
)

// The PDF conversion itself needs wkhtmltopdf on the host, so only the
// failure paths are exercised here. The renderer's HTML stage is covered by
// its own unit tests.
func TestResumeGenerate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")

	t.Run("no profile yields 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/resume/generate", "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "PROFILE_NOT_FOUND")
	})

	t.Run("missing template yields 404", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/profile", token, profileBody("Jane Doe"))
		assert.Equal(t, http.StatusCreated, res.StatusCode)

		// The test config points at a template path that does not exist.
		res, body := ts.SendRequest(t, http.MethodGet, "/api/resume/generate", "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "Resume file not found")
	})
}

func TestResumeGenerateConverterFailure(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "resume.html")
	require.NoError(t, os.WriteFile(templatePath, []byte(
		`<html><body><h1>{{.Name}}</h1><ul>{{range .Skills}}<li>{{.}}</li>{{end}}</ul></body></html>`,
	), 0o644))

	ts := helpers.NewTestServerWithConfig(t, func(cfg *config.Config) {
		cfg.Resume.TemplatePath = templatePath
		cfg.Resume.OutputPath = filepath.Join(dir, "out", "resume.pdf")
		// A converter binary that does not exist makes the PDF stage fail
		// after the template rendered fine.
		cfg.Resume.BinaryPath = filepath.Join(dir, "wkhtmltopdf")
	})
	defer ts.Close()

	_, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/profile", token, profileBody("Jane Doe"))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/resume/generate", "", nil)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Contains(t, body, "EXTERNAL_SERVICE_ERROR")
	assert.Contains(t, body, "Resume rendering failed")
}
