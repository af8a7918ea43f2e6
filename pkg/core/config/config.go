// Package config centralizes process configuration. The environment is
// read once at startup; collaborators receive the resulting struct
// instead of calling os.Getenv themselves.
package config

import (
	"os"
	"strconv"
)

// DefaultAccessCode gates report generation when ACCESS_CODE is unset.
const DefaultAccessCode = "Hammer2025!"

// SMTPConfig carries outbound mail settings. A missing address or
// password disables delivery rather than failing the pipeline.
type SMTPConfig struct {
	Host     string
	Port     int
	Email    string
	Password string
	CC       string
}

// Configured reports whether delivery can be attempted.
func (s SMTPConfig) Configured() bool {
	return s.Email != "" && s.Password != ""
}

// Config is the process-wide configuration.
type Config struct {
	GeminiAPIKey string
	OpenAIAPIKey string
	SearchAPIKey string
	AccessCode   string
	Port         int
	SMTP         SMTPConfig
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		SearchAPIKey: os.Getenv("TAVILY_API_KEY"),
		AccessCode:   os.Getenv("ACCESS_CODE"),
		Port:         8080,
		SMTP: SMTPConfig{
			Host:     "smtp.zoho.com",
			Port:     465,
			Email:    os.Getenv("SMTP_EMAIL"),
			Password: os.Getenv("SMTP_PASSWORD"),
			CC:       os.Getenv("CC_EMAIL"),
		},
	}

	if cfg.AccessCode == "" {
		cfg.AccessCode = DefaultAccessCode
	}
	if raw := os.Getenv("PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			cfg.Port = p
		}
	}
	return cfg
}

// Missing lists the environment variables that are unset. Every one of
// them degrades a feature instead of blocking startup, so callers log
// warnings rather than exiting.
func (c *Config) Missing() []string {
	var out []string
	if c.GeminiAPIKey == "" {
		out = append(out, "GEMINI_API_KEY")
	}
	if c.OpenAIAPIKey == "" {
		out = append(out, "OPENAI_API_KEY")
	}
	if c.SearchAPIKey == "" {
		out = append(out, "TAVILY_API_KEY")
	}
	if !c.SMTP.Configured() {
		out = append(out, "SMTP_EMAIL/SMTP_PASSWORD")
	}
	return out
}

// Status summarizes which external integrations are usable, for the
// configuration endpoint. Secrets themselves are never exposed.
func (c *Config) Status() map[string]bool {
	return map[string]bool{
		"gemini_configured": c.GeminiAPIKey != "",
		"openai_configured": c.OpenAIAPIKey != "",
		"search_configured": c.SearchAPIKey != "",
		"smtp_configured":   c.SMTP.Configured(),
		"access_code_set":   c.AccessCode != DefaultAccessCode,
	}
}
