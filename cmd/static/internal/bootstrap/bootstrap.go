package bootstrap

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	portfolio "github.com/goliatone/go-portfolio"
)

// Environment variables honored by the static CLI. Flags win over the
// environment; the environment wins over defaults.
const (
	EnvDBDriver   = "PORTFOLIO_DB_DRIVER"
	EnvDBDSN      = "PORTFOLIO_DB_DSN"
	EnvContentDir = "PORTFOLIO_CONTENT_DIR"
	EnvLogLevel   = "PORTFOLIO_LOG_LEVEL"
	EnvLogFormat  = "PORTFOLIO_LOG_FORMAT"
)

// Options collects the CLI inputs used to assemble a module.
type Options struct {
	EnvFile    string
	ContentDir string
	BlogDir    string
	ProjectDir string
	Driver     string
	DSN        string
	LogLevel   string
	LogFormat  string
}

// BuildModule loads the environment and constructs a portfolio module.
func BuildModule(opts Options) (*portfolio.Module, error) {
	loadEnv(opts.EnvFile)

	cfg := portfolio.DefaultConfig()

	if dir := firstNonEmpty(opts.ContentDir, os.Getenv(EnvContentDir)); dir != "" {
		cfg.Content.Dir = dir
	}
	if opts.BlogDir != "" {
		cfg.Content.BlogDir = opts.BlogDir
	}
	if opts.ProjectDir != "" {
		cfg.Content.ProjectDir = opts.ProjectDir
	}

	cfg.Database.Driver = firstNonEmpty(opts.Driver, os.Getenv(EnvDBDriver))
	cfg.Database.DSN = firstNonEmpty(opts.DSN, os.Getenv(EnvDBDSN))

	if level := firstNonEmpty(opts.LogLevel, os.Getenv(EnvLogLevel)); level != "" {
		cfg.Logging.Level = level
	}
	if format := firstNonEmpty(opts.LogFormat, os.Getenv(EnvLogFormat)); format != "" {
		cfg.Logging.Format = format
	}

	return portfolio.New(cfg)
}

// loadEnv loads a dotenv file when one exists. A missing file is not an
// error; deployments commonly rely on real environment variables instead.
func loadEnv(envFile string) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
		return
	}
	_ = godotenv.Load()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
