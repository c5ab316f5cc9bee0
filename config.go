package portfolio

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DriverPostgres selects the hosted Postgres store as the primary source.
	DriverPostgres = "postgres"

	// DriverSQLite selects a local SQLite store, used for development.
	DriverSQLite = "sqlite"
)

// DatabaseConfig selects the hosted content store. An empty driver disables
// the database source entirely; the repository then serves local files only.
type DatabaseConfig struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// ContentConfig locates the local Markdown content tree.
type ContentConfig struct {
	Dir        string `json:"dir"`
	BlogDir    string `json:"blog_dir"`
	ProjectDir string `json:"project_dir"`
}

// MarkdownConfig tunes the rendering pipeline.
type MarkdownConfig struct {
	Extensions     []string `json:"extensions"`
	HighlightStyle string   `json:"highlight_style"`
	HardWraps      bool     `json:"hard_wraps"`
}

// LoggingConfig configures the go-logger provider.
type LoggingConfig struct {
	Level     string `json:"level"`
	Format    string `json:"format"`
	AddSource bool   `json:"add_source"`
}

// CacheConfig enables the read-through cache in front of the hosted store
// repositories.
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
}

// Config is the top level module configuration.
type Config struct {
	Database DatabaseConfig `json:"database"`
	Content  ContentConfig  `json:"content"`
	Markdown MarkdownConfig `json:"markdown"`
	Logging  LoggingConfig  `json:"logging"`
	Cache    CacheConfig    `json:"cache"`
}

// DefaultConfig returns the configuration used when nothing is overridden:
// filesystem-only content under ./content, JSON logging at info level.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:        "content",
			BlogDir:    "blog",
			ProjectDir: "projects",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
	}
}

// Validate checks the configuration before the module wires anything.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Database),
		validation.Field(&c.Content),
	)
}

// Validate checks the driver selection and its DSN requirement.
func (c DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.In("", DriverPostgres, DriverSQLite)),
		validation.Field(&c.DSN, validation.Required.When(c.Driver == DriverPostgres).
			Error("dsn is required for the postgres driver")),
	)
}

// Validate checks that every content directory is set.
func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.BlogDir, validation.Required),
		validation.Field(&c.ProjectDir, validation.Required),
	)
}
