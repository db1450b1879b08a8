package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no -config flag is given.
const DefaultConfigPath = "config.yml"

// AppConfig is the root configuration, loaded once at startup and passed
// into components at construction.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"`
	DSN            string         `yaml:"dsn"`
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	AI             AIProvider     `yaml:"ai"`
	Extract        ExtractConfig  `yaml:"extract"`
}

// DatabaseConfig holds MySQL connection parts used when no full DSN is set.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// AIProvider configures the model client.
type AIProvider struct {
	Type     string `yaml:"type"`
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// ExtractConfig configures the content extractor.
type ExtractConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the extractor fetch timeout.
func (e ExtractConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Port: 5000,
		Env:  "production",
		Database: DatabaseConfig{
			Host: "127.0.0.1",
			Port: 3306,
			User: "root",
			Name: "aisumm",
		},
		RedisURL: "redis://127.0.0.1:6379/0",
		AI: AIProvider{
			Type: "openai-compatible",
		},
		Extract: ExtractConfig{
			TimeoutSeconds: 15,
		},
	}
}

// Load reads and validates the YAML config at path.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()

	if cfg.DSN == "" {
		return nil, fmt.Errorf("config: either dsn or database.{host,user,name} must be set")
	}
	return cfg, nil
}

func (c *AppConfig) normalize() {
	if c.Port <= 0 {
		c.Port = 5000
	}
	if c.Env == "" {
		c.Env = "production"
	}
	if c.DSN == "" && c.Database.Name != "" {
		c.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
	}
	if c.Extract.TimeoutSeconds <= 0 {
		c.Extract.TimeoutSeconds = 15
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
