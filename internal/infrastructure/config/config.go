package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once     sync.Once
	instance *Config
)

// Config holds all application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Sheets  SheetsConfig  `mapstructure:"sheets"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
	Logging LoggingConfig `mapstructure:"logging"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type AppConfig struct {
	Name  string `mapstructure:"name"`
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	BaseURL         string        `mapstructure:"base_url"` // Public URL used in email links
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SheetsConfig configures the Google Sheets backend. Credentials come either
// from a service-account key file or from the key JSON inlined in an
// environment variable (the hosted deployment of the original system).
type SheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
	CredentialsJSON string `mapstructure:"credentials_json"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Secure   bool   `mapstructure:"secure"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	// HeadOfficeCC receives a copy of every parts order confirmation
	HeadOfficeCC string `mapstructure:"head_office_cc"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// Initialize sets up Viper with default configuration paths and environment bindings
func Initialize() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/ordering")
	viper.AddConfigPath("$HOME/.ordering")

	// Environment variable support
	viper.SetEnvPrefix("ORDERING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The original deployment configured everything through these bare
	// variables; keep honoring them alongside the ORDERING_* forms.
	bindLegacyEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, using defaults and env vars
	}

	return nil
}

func bindLegacyEnv() {
	viper.BindEnv("sheets.spreadsheet_id", "ORDERING_SHEETS_SPREADSHEET_ID", "SHEET_ID")
	viper.BindEnv("sheets.credentials_file", "ORDERING_SHEETS_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("sheets.credentials_json", "ORDERING_SHEETS_CREDENTIALS_JSON", "GOOGLE_APPLICATION_CREDENTIALS_JSON")
	viper.BindEnv("smtp.host", "ORDERING_SMTP_HOST", "SMTP_HOST")
	viper.BindEnv("smtp.port", "ORDERING_SMTP_PORT", "SMTP_PORT")
	viper.BindEnv("smtp.secure", "ORDERING_SMTP_SECURE", "SMTP_SECURE")
	viper.BindEnv("smtp.user", "ORDERING_SMTP_USER", "SMTP_USER")
	viper.BindEnv("smtp.password", "ORDERING_SMTP_PASSWORD", "SMTP_PASSWORD")
	viper.BindEnv("smtp.from", "ORDERING_SMTP_FROM", "SMTP_FROM")
	viper.BindEnv("server.base_url", "ORDERING_SERVER_BASE_URL", "BASE_URL")
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "ordering")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	// SMTP defaults
	viper.SetDefault("smtp.host", "smtp.gmail.com")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("smtp.secure", false)
	viper.SetDefault("smtp.from", "\"SPLASH'N'GO!\" <noreply@splashngo.example.com>")
	viper.SetDefault("smtp.head_office_cc", "info@splashbrothers.co.jp")

	// Logging defaults
	viper.SetDefault("logging.level", "debug")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("logging.output", "stdout")

	// CORS defaults
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type"})
}

// Load returns the singleton config instance
func Load() (*Config, error) {
	var err error
	once.Do(func() {
		if err = Initialize(); err != nil {
			return
		}
		instance = &Config{}
		if err = viper.Unmarshal(instance); err != nil {
			err = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// GetAddress returns the server address string
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
