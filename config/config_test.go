package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("SALES_PULSE_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 22, cfg.PDFRowsPerPage)
	assert.Equal(t, 1920, cfg.PhotoMaxDim)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SALES_PULSE_HOME", dir)
	content := `
api_base_url: https://api.example.in/api
page_size: 25
pdf_rows_per_page: 30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.in/api", cfg.APIBaseURL)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 30, cfg.PDFRowsPerPage)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SALES_PULSE_HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("api_base_url: https://file.example.in/api\n"), 0600))
	t.Setenv("SALES_PULSE_API_URL", "https://env.example.in/api")
	t.Setenv("SALES_PULSE_PAGE_SIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.in/api", cfg.APIBaseURL)
	assert.Equal(t, 50, cfg.PageSize)
}

func TestLoad_SanitizesNonPositiveValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SALES_PULSE_HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("page_size: -1\npdf_rows_per_page: 0\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 22, cfg.PDFRowsPerPage)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("SALES_PULSE_HOME", t.TempDir())

	cfg := Default()
	cfg.APIBaseURL = "https://saved.example.in/api"
	cfg.ChromePath = "/usr/bin/chromium"
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://saved.example.in/api", loaded.APIBaseURL)
	assert.Equal(t, "/usr/bin/chromium", loaded.ChromePath)
}
