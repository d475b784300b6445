// Package config loads the server configuration from defaults, an optional
// YAML file, a .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/reportfill-go/pkg/reportfill"
)

// Mail providers. An empty provider means SMTP.
const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
)

// DefaultSMTPPort is used when no SMTP port is configured.
const DefaultSMTPPort = 587

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`   // cap on submitted JSON bodies
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // e.g. "30s"
}

// TemplateConfig locates the template workbook and tunes how it is filled.
type TemplateConfig struct {
	Path                string `yaml:"path"`
	Sheet               string `yaml:"sheet"`       // empty = active sheet
	ReportName          string `yaml:"report_name"` // download file name prefix
	AllowBlankOverwrite bool   `yaml:"allow_blank_overwrite"`
	RowHeightPx         int    `yaml:"row_height_px"` // 0 = use row 1 of the template
	ColWidthPx          int    `yaml:"col_width_px"`
}

// SMTPConfig holds SMTP server credentials.
type SMTPConfig struct {
	Server   string `yaml:"server"`
	Port     int    `yaml:"port"` // 0 = DefaultSMTPPort
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// PortOrDefault returns Port, or DefaultSMTPPort when it is unset.
func (c SMTPConfig) PortOrDefault() int {
	if c.Port > 0 {
		return c.Port
	}
	return DefaultSMTPPort
}

// MailConfig configures the mail dispatcher.
type MailConfig struct {
	Provider         string     `yaml:"provider"` // "smtp" (default) or "sendgrid"
	Sender           string     `yaml:"sender"`
	DefaultRecipient string     `yaml:"default_recipient"`
	SMTP             SMTPConfig `yaml:"smtp"`
	SendGridAPIKey   string     `yaml:"sendgrid_api_key"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // "info" or "debug"
}

// Config holds the complete server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Template TemplateConfig `yaml:"template"`
	Mail     MailConfig     `yaml:"mail"`
	Log      LogConfig      `yaml:"log"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			MaxBodyBytes:    10 << 20,
			ShutdownTimeout: 30 * time.Second,
		},
		Template: TemplateConfig{
			Path:       "backstock report.xlsx",
			ReportName: reportfill.DefaultReportName,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the configuration. configPath names an optional YAML file and
// envFile an optional dotenv file; a missing envFile is not an error. Values
// from envFile override the process environment, which overrides the YAML.
func Load(configPath, envFile string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if abs, err := filepath.Abs(cfg.Template.Path); err == nil {
		cfg.Template.Path = abs
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	return validation.Errors{
		"server.port":             validation.Validate(c.Server.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		"server.max_body_bytes":   validation.Validate(c.Server.MaxBodyBytes, validation.Required, validation.Min(int64(1))),
		"server.shutdown_timeout": validation.Validate(c.Server.ShutdownTimeout, validation.Required, validation.Min(time.Millisecond)),
		"template.path":           validation.Validate(c.Template.Path, validation.Required),
		"template.row_height_px":  validation.Validate(c.Template.RowHeightPx, validation.Min(0)),
		"template.col_width_px":   validation.Validate(c.Template.ColWidthPx, validation.Min(0)),
		"mail.provider":           validation.Validate(c.Mail.Provider, validation.In(ProviderSMTP, ProviderSendGrid)),
		"mail.smtp.port":          validation.Validate(c.Mail.SMTP.Port, validation.Min(1), validation.Max(65535)),
		"log.level":               validation.Validate(c.Log.Level, validation.In("debug", "info")),
	}.Filter()
}

// ReportOptions returns the template options for the template store.
func (c *Config) ReportOptions() reportfill.Options {
	return reportfill.Options{
		Sheet:               c.Template.Sheet,
		ReportName:          c.Template.ReportName,
		AllowBlankOverwrite: c.Template.AllowBlankOverwrite,
		RowHeightPx:         c.Template.RowHeightPx,
		ColWidthPx:          c.Template.ColWidthPx,
	}
}

// Address returns the listen address.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"EXCEL_TEMPLATE_PATH": &c.Template.Path,
		"SHEET_NAME":          &c.Template.Sheet,
		"REPORT_NAME":         &c.Template.ReportName,
		"MAIL_PROVIDER":       &c.Mail.Provider,
		"SENDER_EMAIL":        &c.Mail.Sender,
		"DEFAULT_RECIPIENT":   &c.Mail.DefaultRecipient,
		"SMTP_SERVER":         &c.Mail.SMTP.Server,
		"SMTP_USERNAME":       &c.Mail.SMTP.Username,
		"SMTP_PASSWORD":       &c.Mail.SMTP.Password,
		"SENDGRID_API_KEY":    &c.Mail.SendGridAPIKey,
		"LOG_LEVEL":           &c.Log.Level,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	c.Mail.Provider = strings.ToLower(strings.TrimSpace(c.Mail.Provider))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	ints := map[string]*int{
		"PORT":                  &c.Server.Port,
		"SMTP_PORT":             &c.Mail.SMTP.Port,
		"UNIFORM_ROW_HEIGHT_PX": &c.Template.RowHeightPx,
		"DEFAULT_COL_WIDTH_PX":  &c.Template.ColWidthPx,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}

	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		c.Server.ShutdownTimeout = d
	}

	if v, ok := lookup("ALLOW_BLANK_OVERWRITE"); ok {
		c.Template.AllowBlankOverwrite = ParseBool(v)
	}
	return nil
}

// ParseBool reports whether v is one of "1", "true" or "yes" (any case).
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
