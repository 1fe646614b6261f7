package config

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/leomarzeuski/portfolio/internal/locale"
)

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Vercel   VercelConfig
	Locale   LocaleConfig
	Contact  ContactConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Cors     CorsConfig
	Refresh  RefreshConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"portfolio"`
}

// VercelConfig holds the credentials for the project list upstream.
// An empty Token disables the proxy instead of sending unauthenticated requests.
type VercelConfig struct {
	Token   string        `env:"VERCEL_API_TOKEN"`
	APIURL  string        `env:"VERCEL_API_URL" envDefault:"https://api.vercel.com"`
	TeamID  string        `env:"VERCEL_TEAM_ID"`
	Timeout time.Duration `env:"VERCEL_TIMEOUT" envDefault:"10s"`
}

type LocaleConfig struct {
	Default        string `env:"LOCALE_DEFAULT" envDefault:"pt"`
	Negotiate      bool   `env:"LOCALE_NEGOTIATE" envDefault:"false"`
	ExcludePattern string `env:"LOCALE_EXCLUDE_PATTERN" envDefault:"^/(static|api|health|healthz|favicon\\.ico|robots\\.txt)(/|$)"`
}

type ContactConfig struct {
	FormspreeEndpoint string        `env:"FORMSPREE_ENDPOINT"`
	RatePerMinute     int           `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	Burst             int           `env:"CONTACT_RATE_BURST" envDefault:"3"`
	Timeout           time.Duration `env:"FORMSPREE_TIMEOUT" envDefault:"10s"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// DatabaseConfig enables the contact archive when Host is set.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"portfolio"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type CorsConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type RefreshConfig struct {
	Spec string `env:"PROJECTS_REFRESH_SPEC" envDefault:"@every 55m"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if _, ok := locale.Parse(c.Locale.Default); !ok {
		return fmt.Errorf("LOCALE_DEFAULT %q is not a supported locale", c.Locale.Default)
	}

	if _, err := regexp.Compile(c.Locale.ExcludePattern); err != nil {
		return fmt.Errorf("LOCALE_EXCLUDE_PATTERN: %w", err)
	}

	if c.Contact.RatePerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive")
	}

	if c.Contact.Burst <= 0 {
		return fmt.Errorf("CONTACT_RATE_BURST must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}
