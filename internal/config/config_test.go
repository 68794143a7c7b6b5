package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "content/resume.json", cfg.Resume.DataPath)
	assert.Equal(t, filepath.Join("public", "Resume.docx"), cfg.Output.DOCXPath())
	assert.Equal(t, filepath.Join("public", "Resume.pdf"), cfg.Output.PDFPath())
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.PDF.LoadTimeout)
	assert.Equal(t, 30*time.Second, cfg.PDF.LaunchTimeout)
	assert.Equal(t, "grid", cfg.DOCX.CompetencyLayout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Database.URL)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("RESUME_OUTPUT_DIR", "dist")
	t.Setenv("RESUME_SERVER_PORT", "8080")
	t.Setenv("RESUME_PDF_LOAD_TIMEOUT", "5s")
	t.Setenv("RESUME_DOCX_COMPETENCY_LAYOUT", "line")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("dist", "Resume.docx"), cfg.Output.DOCXPath())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.PDF.LoadTimeout)
	assert.Equal(t, "line", cfg.DOCX.CompetencyLayout)
}

func TestFromViper_YAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
log:
  level: debug
  format: json
resume:
  data_path: data/cv.json
`)))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "data/cv.json", cfg.Resume.DataPath)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"log level", "RESUME_LOG_LEVEL", "trace"},
		{"log format", "RESUME_LOG_FORMAT", "xml"},
		{"competency layout", "RESUME_DOCX_COMPETENCY_LAYOUT", "table"},
		{"port", "RESUME_SERVER_PORT", "70000"},
		{"load timeout", "RESUME_PDF_LOAD_TIMEOUT", "0s"},
		{"launch timeout", "RESUME_PDF_LAUNCH_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.val)
			_, err := FromViper(viper.New())
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}
