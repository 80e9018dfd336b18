package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "."
	ConfigFileName    = "hdms.yml"
)

// Config holds all HDMS settings.
type Config struct {
	// CredentialsFile is the staff credential source.
	CredentialsFile string `yaml:"credentials_file"`

	// RecordsFile is the patient visit records source.
	RecordsFile string `yaml:"records_file"`

	// UsageLog is the append-only audit log.
	UsageLog string `yaml:"usage_log"`

	// SessionFile holds the current session token.
	SessionFile string `yaml:"session_file"`

	// SessionTTLMinutes is how long a session token stays valid.
	SessionTTLMinutes int `yaml:"session_ttl_minutes"`

	// AuditDatabase is an optional SQLite mirror of the usage log.
	// Empty disables the mirror.
	AuditDatabase string `yaml:"audit_database"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute is a configuration attribute with its value and source.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values.
func newDefault() *Config {
	return &Config{
		CredentialsFile:   "credentials.csv",
		RecordsFile:       "patients.csv",
		UsageLog:          "usage_log.csv",
		SessionFile:       ".hdms-session",
		SessionTTLMinutes: 60,
		AuditDatabase:     "",
		sources:           make(map[string]string),
	}
}

// envVars maps attribute names to their environment overrides.
var envVars = map[string]string{
	"credentials_file":    "HDMS_CREDENTIALS_FILE",
	"records_file":        "HDMS_RECORDS_FILE",
	"usage_log":           "HDMS_USAGE_LOG",
	"session_file":        "HDMS_SESSION_FILE",
	"session_ttl_minutes": "HDMS_SESSION_TTL_MINUTES",
	"audit_database":      "HDMS_AUDIT_DATABASE",
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := newDefault()

	for name := range envVars {
		cfg.sources[name] = "default"
	}

	configPath := os.Getenv("HDMS_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(cfg.configFilePath); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", cfg.configFilePath, err)
		}
		cfg.applyFile(&fileCfg)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.configFilePath, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(file *Config) {
	if file.CredentialsFile != "" {
		c.CredentialsFile = file.CredentialsFile
		c.sources["credentials_file"] = "file"
	}
	if file.RecordsFile != "" {
		c.RecordsFile = file.RecordsFile
		c.sources["records_file"] = "file"
	}
	if file.UsageLog != "" {
		c.UsageLog = file.UsageLog
		c.sources["usage_log"] = "file"
	}
	if file.SessionFile != "" {
		c.SessionFile = file.SessionFile
		c.sources["session_file"] = "file"
	}
	if file.SessionTTLMinutes != 0 {
		c.SessionTTLMinutes = file.SessionTTLMinutes
		c.sources["session_ttl_minutes"] = "file"
	}
	if file.AuditDatabase != "" {
		c.AuditDatabase = file.AuditDatabase
		c.sources["audit_database"] = "file"
	}
}

func (c *Config) applyEnv() error {
	for name, envVar := range envVars {
		value, ok := os.LookupEnv(envVar)
		if !ok {
			continue
		}
		switch name {
		case "credentials_file":
			c.CredentialsFile = value
		case "records_file":
			c.RecordsFile = value
		case "usage_log":
			c.UsageLog = value
		case "session_file":
			c.SessionFile = value
		case "session_ttl_minutes":
			ttl, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", envVar, err)
			}
			c.SessionTTLMinutes = ttl
		case "audit_database":
			c.AuditDatabase = value
		}
		c.sources[name] = "env"
	}
	return nil
}

// Attributes returns every attribute with its value and source, sorted by
// name.
func (c *Config) Attributes() []Attribute {
	values := map[string]string{
		"credentials_file":    c.CredentialsFile,
		"records_file":        c.RecordsFile,
		"usage_log":           c.UsageLog,
		"session_file":        c.SessionFile,
		"session_ttl_minutes": strconv.Itoa(c.SessionTTLMinutes),
		"audit_database":      c.AuditDatabase,
	}

	attrs := make([]Attribute, 0, len(values))
	for name, value := range values {
		attrs = append(attrs, Attribute{
			Name:   name,
			Value:  value,
			Source: c.sources[name],
		})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

// FilePath returns the config file path this config was loaded from.
func (c *Config) FilePath() string {
	return c.configFilePath
}

// FormatText renders the attributes as an aligned text table.
func (c *Config) FormatText() string {
	attrs := c.Attributes()

	width := 0
	for _, attr := range attrs {
		if len(attr.Name) > width {
			width = len(attr.Name)
		}
	}

	out := fmt.Sprintf("Config file: %s\n\n", c.configFilePath)
	for _, attr := range attrs {
		out += fmt.Sprintf("%-*s  %s (%s)\n", width, attr.Name, attr.Value, attr.Source)
	}
	return out
}

// FormatJSON renders the attributes as JSON.
func (c *Config) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(c.Attributes(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
