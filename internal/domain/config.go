package domain

import (
	_ "embed"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Tracker  TrackerConfig  `toml:"tracker"`
	Pamphlet PamphletConfig `toml:"pamphlet"`
	HTTP     HTTPConfig     `toml:"http"`
	Log      LogConfig      `toml:"log"`
}

// TrackerConfig holds issue tracker addresses from [tracker] section.
type TrackerConfig struct {
	BrowseBaseURL     string `toml:"browse_base_url,omitempty"`     // Public issue pages: <base>/<key>
	AttachmentBaseURL string `toml:"attachment_base_url,omitempty"` // Attachments: <base>/<id>/<note_filename>
	NoteFilename      string `toml:"note_filename,omitempty"`       // Name of the detailed note attachment
}

// PamphletConfig holds output settings from [pamphlet] section.
type PamphletConfig struct {
	ProductName string `toml:"product_name,omitempty"` // Product named in titles and sentences
	TableBorder int    `toml:"table_border,omitempty"` // Border width of the bug fix table
	Indent      int    `toml:"indent,omitempty"`       // Spaces per indent level; negative writes copied fragments verbatim
}

// HTTPConfig holds note fetching settings from [http] section.
type HTTPConfig struct {
	UserAgent      string `toml:"user_agent,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"` // 0 = no timeout
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultBrowseBaseURL     = "http://issues.apache.org/jira/browse"
	DefaultAttachmentBaseURL = "http://issues.apache.org/jira/secure/attachment"
	DefaultNoteFilename      = "releaseNote.html"
	DefaultProductName       = "Derby"
	DefaultTableBorder       = 2
	DefaultIndent            = -1
	DefaultUserAgent         = "relnotes"
	DefaultLogLevel          = "info"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Tracker: TrackerConfig{
			BrowseBaseURL:     DefaultBrowseBaseURL,
			AttachmentBaseURL: DefaultAttachmentBaseURL,
			NoteFilename:      DefaultNoteFilename,
		},
		Pamphlet: PamphletConfig{
			ProductName: DefaultProductName,
			TableBorder: DefaultTableBorder,
			Indent:      DefaultIndent,
		},
		HTTP: HTTPConfig{
			UserAgent: DefaultUserAgent,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Merge overlays the non-zero values of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Tracker.BrowseBaseURL != "" {
		c.Tracker.BrowseBaseURL = other.Tracker.BrowseBaseURL
	}
	if other.Tracker.AttachmentBaseURL != "" {
		c.Tracker.AttachmentBaseURL = other.Tracker.AttachmentBaseURL
	}
	if other.Tracker.NoteFilename != "" {
		c.Tracker.NoteFilename = other.Tracker.NoteFilename
	}
	if other.Pamphlet.ProductName != "" {
		c.Pamphlet.ProductName = other.Pamphlet.ProductName
	}
	if other.Pamphlet.TableBorder != 0 {
		c.Pamphlet.TableBorder = other.Pamphlet.TableBorder
	}
	if other.Pamphlet.Indent != 0 {
		c.Pamphlet.Indent = other.Pamphlet.Indent
	}
	if other.HTTP.UserAgent != "" {
		c.HTTP.UserAgent = other.HTTP.UserAgent
	}
	if other.HTTP.TimeoutSeconds != 0 {
		c.HTTP.TimeoutSeconds = other.HTTP.TimeoutSeconds
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	c.Warnings = append(c.Warnings, other.Warnings...)
}

// RenderConfigTemplate returns the commented configuration template.
func RenderConfigTemplate() string {
	return configTemplateContent
}

// GlobalConfigDir returns the global configuration directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "relnotes")
}

// ConfigInfo describes a configuration file location.
type ConfigInfo struct {
	Path   string
	Exists bool
}
