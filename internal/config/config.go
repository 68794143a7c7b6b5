package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Resume   ResumeConfig   `mapstructure:"resume"`
	Output   OutputConfig   `mapstructure:"output"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	PDF      PDFConfig      `mapstructure:"pdf"`
	DOCX     DOCXConfig     `mapstructure:"docx"`
	Log      LogConfig      `mapstructure:"log"`
}

type ResumeConfig struct {
	DataPath string `mapstructure:"data_path" validate:"required"`
}

type OutputConfig struct {
	Dir      string `mapstructure:"dir" validate:"required"`
	DOCXName string `mapstructure:"docx_name" validate:"required"`
	PDFName  string `mapstructure:"pdf_name" validate:"required"`
}

// DOCXPath is where generate-docx writes.
func (o OutputConfig) DOCXPath() string { return filepath.Join(o.Dir, o.DOCXName) }

// PDFPath is where generate-pdf writes.
func (o OutputConfig) PDFPath() string { return filepath.Join(o.Dir, o.PDFName) }

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type DatabaseConfig struct {
	// URL is optional; without it runs are not recorded.
	URL string `mapstructure:"url"`
}

type PDFConfig struct {
	ChromePath    string        `mapstructure:"chrome_path"`
	LaunchTimeout time.Duration `mapstructure:"launch_timeout" validate:"gt=0"`
	LoadTimeout   time.Duration `mapstructure:"load_timeout" validate:"gt=0"`
}

type DOCXConfig struct {
	CompetencyLayout string `mapstructure:"competency_layout" validate:"oneof=grid line"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

const envPrefix = "RESUME"

var defaults = map[string]any{
	"resume.data_path":       "content/resume.json",
	"output.dir":             "public",
	"output.docx_name":       "Resume.docx",
	"output.pdf_name":        "Resume.pdf",
	"server.port":            3000,
	"database.url":           "",
	"pdf.chrome_path":        "",
	"pdf.launch_timeout":     "30s",
	"pdf.load_timeout":       "30s",
	"docx.competency_layout": "grid",
	"log.level":              "info",
	"log.format":             "console",
}

// Load reads .env, an optional config.yaml from ./configs or the working
// directory, then RESUME_* environment overrides (RESUME_OUTPUT_DIR for
// output.dir), and validates the result.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper applies defaults and environment overrides to v, then decodes and
// validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
