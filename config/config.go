package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "CMS_CONFIG"

	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// Config holds everything main needs to wire the service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	Articles ArticlesConfig `yaml:"articles"`
	Sitemap  SitemapConfig  `yaml:"sitemap"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Signup   SignupConfig   `yaml:"signup"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StoreConfig selects and addresses the key-value backend.
type StoreConfig struct {
	Driver        string `yaml:"driver"`
	RedisURL      string `yaml:"redisUrl"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDb"`
	DatabaseDSN   string `yaml:"databaseDsn"`
}

type ArticlesConfig struct {
	MaxPageSize           int `yaml:"maxPageSize"`
	DefaultCandidateLimit int `yaml:"defaultCandidateLimit"`
	MaxCandidateLimit     int `yaml:"maxCandidateLimit"`
}

type SitemapConfig struct {
	BaseURL     string       `yaml:"baseUrl"`
	StaticPages []StaticPage `yaml:"staticPages"`
}

// StaticPage is a non-article page listed in the sitemap after the home page.
type StaticPage struct {
	Path       string `yaml:"path"`
	ChangeFreq string `yaml:"changefreq"`
	Priority   string `yaml:"priority"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// SignupConfig drives the signup counter read from a spreadsheet.
type SignupConfig struct {
	CredentialsJSON string `yaml:"credentialsJson"`
	SheetID         string `yaml:"sheetId"`
	Range           string `yaml:"range"`
	BaseCount       int    `yaml:"baseCount"`
	Capacity        int    `yaml:"capacity"`
}

// Load starts from defaults, merges the YAML file named by CMS_CONFIG if
// set, then applies environment overrides.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	strs := []struct {
		env string
		dst *string
	}{
		{"PORT", &c.Server.Port},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FORMAT", &c.Log.Format},
		{"STORE_DRIVER", &c.Store.Driver},
		{"REDIS_URL", &c.Store.RedisURL},
		{"REDIS_ADDR", &c.Store.RedisAddr},
		{"REDIS_PASSWORD", &c.Store.RedisPassword},
		{"DATABASE_DSN", &c.Store.DatabaseDSN},
		{"SITE_BASE_URL", &c.Sitemap.BaseURL},
		{"OPENAI_API_KEY", &c.OpenAI.APIKey},
		{"OPENAI_MODEL", &c.OpenAI.Model},
		{"GOOGLE_SERVICE_ACCOUNT_CREDENTIALS", &c.Signup.CredentialsJSON},
		{"SIGNUP_SHEET_ID", &c.Signup.SheetID},
		{"SIGNUP_SHEET_RANGE", &c.Signup.Range},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"REDIS_DB", &c.Store.RedisDB},
		{"MAX_PAGE_SIZE", &c.Articles.MaxPageSize},
		{"SIGNUP_BASE_COUNT", &c.Signup.BaseCount},
		{"SIGNUP_CAPACITY", &c.Signup.Capacity},
	}
	for _, i := range ints {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s: %w", i.env, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverRedis:
		if c.Store.RedisURL == "" && c.Store.RedisAddr == "" {
			return fmt.Errorf("store: redis driver needs REDIS_URL or REDIS_ADDR")
		}
	case StoreDriverPostgres:
		if c.Store.DatabaseDSN == "" {
			return fmt.Errorf("store: postgres driver needs DATABASE_DSN")
		}
	default:
		return fmt.Errorf("store: unknown driver %q", c.Store.Driver)
	}

	if c.Articles.MaxPageSize < 1 {
		return fmt.Errorf("articles: maxPageSize must be positive")
	}
	if c.Articles.MaxCandidateLimit < 1 || c.Articles.DefaultCandidateLimit < 1 ||
		c.Articles.DefaultCandidateLimit > c.Articles.MaxCandidateLimit {
		return fmt.Errorf("articles: candidate limits must satisfy 0 < default <= max")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8080", AllowedOrigins: []string{"*"}},
		Log:    LogConfig{Level: "info", Format: "text"},
		Store: StoreConfig{
			Driver:    StoreDriverRedis,
			RedisAddr: "localhost:6379",
		},
		Articles: ArticlesConfig{
			MaxPageSize:           100,
			DefaultCandidateLimit: 30,
			MaxCandidateLimit:     100,
		},
		Sitemap: SitemapConfig{
			BaseURL: "https://www.h3llo.dk",
			StaticPages: []StaticPage{
				{Path: "articles", ChangeFreq: "weekly", Priority: "0.9"},
				{Path: "demo", ChangeFreq: "monthly", Priority: "0.8"},
				{Path: "kampagnepris", ChangeFreq: "monthly", Priority: "0.8"},
				{Path: "privacy", ChangeFreq: "yearly", Priority: "0.5"},
			},
		},
		OpenAI: OpenAIConfig{Model: "gpt-4-turbo-preview"},
		Signup: SignupConfig{
			Range:     "Sheet1!A:A",
			BaseCount: 31,
			Capacity:  500,
		},
	}
}
